package driver

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"codeberg.org/snonux/predtrans/internal/processor"
	"codeberg.org/snonux/predtrans/internal/testutil"
)

type fakeProcessor struct {
	calls   []string
	records int
	errOn   string
}

func (f *fakeProcessor) ProcessFile(ctx context.Context, inputPath, outputPath, lang string) (processor.FileResult, error) {
	f.calls = append(f.calls, filepath.Base(inputPath)+"->"+filepath.Base(outputPath)+" ("+lang+")")
	if f.errOn != "" && strings.Contains(inputPath, f.errOn) {
		return processor.FileResult{}, errors.New("boom")
	}
	return processor.FileResult{Lines: f.records, Records: f.records}, nil
}

func TestJobs(t *testing.T) {
	got := Jobs([]string{"assamese", "bengali"}, []string{"generated", "gold"})
	want := []Job{
		{"assamese", "generated"},
		{"assamese", "gold"},
		{"bengali", "generated"},
		{"bengali", "gold"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Jobs() = %v, want %v", got, want)
	}

	if got := Jobs(nil, []string{"generated"}); len(got) != 0 {
		t.Errorf("Jobs() with no languages = %v, want empty", got)
	}
}

func TestJobPaths(t *testing.T) {
	job := Job{Language: "bengali", FileType: "generated"}

	if got, want := job.InputPath("data"), filepath.Join("data", "predictions-bengali-generated.jsonl"); got != want {
		t.Errorf("InputPath() = %q, want %q", got, want)
	}
	if got, want := job.OutputPath("data"), filepath.Join("data", "predictions-bengali-generated-translated.jsonl"); got != want {
		t.Errorf("OutputPath() = %q, want %q", got, want)
	}
}

func TestRun(t *testing.T) {
	root := t.TempDir()
	testutil.CreateJSONLFile(t, filepath.Join(root, "predictions-assamese-generated.jsonl"), `{}`)
	testutil.CreateJSONLFile(t, filepath.Join(root, "predictions-spanish-generated.jsonl"), `{}`)

	store := testutil.NewMockStore()
	store.Put("as:x", "y")
	proc := &fakeProcessor{records: 3}
	var out bytes.Buffer

	d := New(proc, store, Config{
		RootDir: root,
		Jobs:    Jobs([]string{"assamese", "bengali", "spanish"}, []string{"generated"}),
		Out:     &out,
	})

	summary, err := d.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	want := Summary{Processed: 2, Skipped: 1, Records: 6, CacheSize: 1}
	if summary != want {
		t.Errorf("Summary = %+v, want %+v", summary, want)
	}

	wantCalls := []string{
		"predictions-assamese-generated.jsonl->predictions-assamese-generated-translated.jsonl (assamese)",
		"predictions-spanish-generated.jsonl->predictions-spanish-generated-translated.jsonl (spanish)",
	}
	if !reflect.DeepEqual(proc.calls, wantCalls) {
		t.Errorf("Processor calls = %v, want %v", proc.calls, wantCalls)
	}

	if !strings.Contains(out.String(), "=== Translation Summary ===") {
		t.Errorf("Expected summary block, got %q", out.String())
	}
	if !strings.Contains(out.String(), "Files skipped:   1") {
		t.Errorf("Expected skipped count in summary, got %q", out.String())
	}
}

func TestRun_MissingInputCreatesNoOutput(t *testing.T) {
	root := t.TempDir()
	d := New(&fakeProcessor{}, testutil.NewMockStore(), Config{
		RootDir: root,
		Jobs:    []Job{{Language: "bengali", FileType: "generated"}},
	})

	summary, err := d.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if summary.Skipped != 1 || summary.Processed != 0 {
		t.Errorf("Summary = %+v, want one skipped file", summary)
	}
	testutil.AssertFileNotExists(t, filepath.Join(root, "predictions-bengali-generated-translated.jsonl"))
}

func TestRun_StopsOnError(t *testing.T) {
	root := t.TempDir()
	for _, lang := range []string{"assamese", "bengali", "spanish"} {
		testutil.CreateJSONLFile(t, filepath.Join(root, "predictions-"+lang+"-generated.jsonl"), `{}`)
	}
	proc := &fakeProcessor{errOn: "bengali"}

	d := New(proc, testutil.NewMockStore(), Config{
		RootDir: root,
		Jobs:    Jobs([]string{"assamese", "bengali", "spanish"}, []string{"generated"}),
	})

	summary, err := d.Run(context.Background())
	if err == nil {
		t.Fatal("Expected error from failing file")
	}
	if !strings.Contains(err.Error(), "predictions-bengali-generated.jsonl") {
		t.Errorf("Error should name the input file, got: %v", err)
	}
	if summary.Processed != 1 {
		t.Errorf("Processed = %d, want 1", summary.Processed)
	}
	if len(proc.calls) != 2 {
		t.Errorf("Expected the run to stop after the failing file, got calls %v", proc.calls)
	}
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := New(&fakeProcessor{}, testutil.NewMockStore(), Config{
		RootDir: t.TempDir(),
		Jobs:    []Job{{Language: "assamese", FileType: "generated"}},
	})
	if _, err := d.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}

func TestRun_WithProcessor(t *testing.T) {
	root := t.TempDir()
	testutil.CreateJSONLFile(t, filepath.Join(root, "predictions-spanish-generated.jsonl"),
		`{"Generated": "gato, felino", "Answer": ["gato"]}`)

	store := testutil.NewMockStore()
	translator := &prefixTranslator{}
	p := processor.NewProcessor(translator, store, processor.Config{})

	d := New(p, store, Config{
		RootDir: root,
		Jobs:    []Job{{Language: "spanish", FileType: "generated"}},
	})
	summary, err := d.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if summary.Records != 1 {
		t.Errorf("Records = %d, want 1", summary.Records)
	}

	records := testutil.ReadJSONLFile(t, filepath.Join(root, "predictions-spanish-generated-translated.jsonl"))
	if len(records) != 1 || records[0]["TranslatedAnswer"] != "es:gato" {
		t.Errorf("Unexpected output records: %v", records)
	}
}

type prefixTranslator struct{}

func (prefixTranslator) Translate(ctx context.Context, text, sourceCode string) string {
	return sourceCode + ":" + text
}
