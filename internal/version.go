package internal

// Version is the predtrans release.
const Version = "0.3.0"
