package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/aoc/internal/domain"
	"github.com/aalvaropc/aoc/internal/usecase"
)

// --- helpers ---

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func newWorkspace(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	if _, err := execute(t, "init", root, "-y", "2015"); err != nil {
		t.Fatalf("init: %v", err)
	}
	return root
}

func writeInput(t *testing.T, root string, year, day int, text string) {
	t.Helper()
	dir := filepath.Join(root, "inputs", strconv.Itoa(year))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	name := fmt.Sprintf("day%02d.txt", day)
	if err := os.WriteFile(filepath.Join(dir, name), []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}
}

func sampleResult() domain.Result {
	start := time.Date(2021, 12, 13, 5, 0, 0, 0, time.UTC)
	return domain.Result{
		Key:       domain.Key{Year: 2021, Day: 13},
		PartOne:   domain.Answer{Value: "17", DurationMS: 2},
		PartTwo:   domain.Answer{Value: "#####\n#...#", DurationMS: 5},
		StartedAt: start,
		EndedAt:   start.Add(7 * time.Millisecond),
	}
}

// --- printResult ---

func TestPrintResult_JSON_ValidOutput(t *testing.T) {
	var buf bytes.Buffer
	if err := printResult(&buf, sampleResult(), "abc123", "json"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if payload["run_id"] != "abc123" {
		t.Errorf("expected run_id=abc123, got %v", payload["run_id"])
	}
	if payload["result"] == nil {
		t.Error("expected 'result' key in JSON output")
	}
}

func TestPrintResult_Pretty(t *testing.T) {
	var buf bytes.Buffer
	if err := printResult(&buf, sampleResult(), "run-42", "pretty"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"[OK] 2021/day13", "part one: 17 (2ms)", "    #...#", "Run ID: run-42"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in pretty output, got:\n%s", want, out)
		}
	}
}

func TestPrintResult_PartError(t *testing.T) {
	res := sampleResult()
	res.PartTwo = domain.Answer{Error: &domain.RunError{Kind: domain.RunErrorFailed, Message: "boom"}}

	var buf bytes.Buffer
	if err := printResult(&buf, res, "", ""); err != nil {
		t.Fatalf("empty format should behave like pretty, got error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "[FAIL]") || !strings.Contains(out, "part two: error: boom (failed)") {
		t.Errorf("expected failure in output, got:\n%s", out)
	}
}

func TestPrintResult_StageError(t *testing.T) {
	res := domain.Result{
		Key:   domain.Key{Year: 2021, Day: 26},
		Error: &domain.StageError{Kind: domain.KindDayNotFound, Message: "no such day"},
	}
	var buf bytes.Buffer
	_ = printResult(&buf, res, "", "pretty")
	if !strings.Contains(buf.String(), "error: no such day (day_not_found)") {
		t.Errorf("expected stage error, got:\n%s", buf.String())
	}
}

func TestPrintResult_UnknownFormat_ReturnsError(t *testing.T) {
	var buf bytes.Buffer
	err := printResult(&buf, domain.Result{}, "", "xml")
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
	if !strings.Contains(err.Error(), "xml") {
		t.Errorf("expected error to mention format, got: %v", err)
	}
}

func TestPrintBatch(t *testing.T) {
	b := usecase.Batch{
		Results: []domain.Result{sampleResult(), {Key: domain.Key{Year: 2021, Day: 26}}},
		Errors:  []error{nil, errors.New("2021/day26: not registered")},
	}

	var buf bytes.Buffer
	if err := printBatch(&buf, b, "", "json"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var payload struct {
		Errors []*string `json:"errors"`
	}
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(payload.Errors) != 2 {
		t.Fatalf("expected errors aligned with results, got %v", payload.Errors)
	}
	if payload.Errors[0] != nil {
		t.Errorf("expected null for solved day, got %q", *payload.Errors[0])
	}
	if payload.Errors[1] == nil || *payload.Errors[1] != "2021/day26: not registered" {
		t.Errorf("unexpected error entry %v", payload.Errors[1])
	}

	buf.Reset()
	_ = printBatch(&buf, b, "all-1", "pretty")
	if !strings.Contains(buf.String(), "2 day(s), 0 failed") {
		t.Errorf("expected summary, got:\n%s", buf.String())
	}
}

func TestPrintCheckReport(t *testing.T) {
	k := domain.Key{Year: 2015, Day: 2}
	r := usecase.CheckReport{Days: []domain.DayCheck{{
		Key: k,
		Parts: []domain.PartCheck{
			domain.CompareAnswer(domain.PartOne, "58", domain.Answer{Value: "58"}),
			domain.CompareAnswer(domain.PartTwo, "35", domain.Answer{Value: "34"}),
		},
	}}}

	var buf bytes.Buffer
	printCheckReport(&buf, r)
	out := buf.String()
	if !strings.Contains(out, "MISMATCH 2015/day02 part_two: expected 35, got 34") {
		t.Errorf("expected mismatch line, got:\n%s", out)
	}
	if !strings.Contains(out, "1 match, 1 mismatch, 0 failed, 0 unchecked") {
		t.Errorf("expected summary, got:\n%s", out)
	}
}

// --- resolveYear ---

func TestResolveYear_Precedence(t *testing.T) {
	v := newViper()
	c := &cobra.Command{}
	c.Flags().IntP(keyYear, "y", 0, "")

	if got := resolveYear(c, v, 2021); got != 2021 {
		t.Errorf("expected fallback 2021, got %d", got)
	}

	t.Setenv("AOC_YEAR", "2019")
	if got := resolveYear(c, v, 2021); got != 2019 {
		t.Errorf("expected AOC_YEAR 2019, got %d", got)
	}

	_ = c.Flags().Set(keyYear, "2015")
	if got := resolveYear(c, v, 2021); got != 2015 {
		t.Errorf("expected flag 2015, got %d", got)
	}
}

func TestSessionToken(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Fetch.SessionEnv = "MY_AOC_COOKIE"

	t.Setenv("AOC_SESSION", "")
	t.Setenv("MY_AOC_COOKIE", " from-config ")
	if got := sessionToken(newViper(), cfg); got != "from-config" {
		t.Errorf("expected session_env fallback, got %q", got)
	}

	t.Setenv("AOC_SESSION", "from-viper")
	if got := sessionToken(newViper(), cfg); got != "from-viper" {
		t.Errorf("expected AOC_SESSION, got %q", got)
	}
}

// --- command structure ---

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	cmd := newRootCmd()
	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, want := range []string{"run", "all", "list", "check", "fetch", "init", "runs", "version"} {
		if !names[want] {
			t.Errorf("expected subcommand %q", want)
		}
	}
}

func TestRunCmd_RequiresDay(t *testing.T) {
	_, err := execute(t, "run", "-y", "2021")
	if err == nil || !strings.Contains(err.Error(), "day") {
		t.Fatalf("expected required flag error, got %v", err)
	}
}

// --- end to end ---

func TestRun_SolvesWorkspaceInputAndSaves(t *testing.T) {
	root := newWorkspace(t)
	writeInput(t, root, 2015, 2, "2x3x4\n1x1x10\n")

	out, err := execute(t, "run", "-w", root, "-y", "2015", "-d", "2", "--format", "json")
	if err != nil {
		t.Fatalf("run: %v\n%s", err, out)
	}

	var payload struct {
		RunID  string        `json:"run_id"`
		Result domain.Result `json:"result"`
	}
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if payload.Result.PartOne.Value != "101" || payload.Result.PartTwo.Value != "48" {
		t.Fatalf("unexpected answers: %+v", payload.Result)
	}
	if payload.RunID == "" {
		t.Fatal("expected run to be saved")
	}

	out, err = execute(t, "runs", "show", "-w", root, payload.RunID, "--query", "$.results[0].part_one.value")
	if err != nil {
		t.Fatalf("runs show: %v", err)
	}
	if strings.TrimSpace(out) != `"101"` && strings.TrimSpace(out) != "101" {
		t.Fatalf("unexpected query output %q", out)
	}

	out, err = execute(t, "runs", "list", "-w", root)
	if err != nil {
		t.Fatalf("runs list: %v", err)
	}
	if !strings.Contains(out, payload.RunID) {
		t.Fatalf("expected run id in list, got:\n%s", out)
	}
}

func TestRun_NoSaveAndInputFile(t *testing.T) {
	root := newWorkspace(t)
	file := filepath.Join(t.TempDir(), "sample.txt")
	if err := os.WriteFile(file, []byte("2x3x4\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "run", "-w", root, "-y", "2015", "-d", "2", "--input", file, "--no-save")
	if err != nil {
		t.Fatalf("run: %v\n%s", err, out)
	}
	if !strings.Contains(out, "part one: 58") || !strings.Contains(out, "part two: 34") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if strings.Contains(out, "Run ID") {
		t.Fatalf("expected no saved run, got:\n%s", out)
	}
}

func TestRun_MissingInputFails(t *testing.T) {
	root := newWorkspace(t)
	_, err := execute(t, "run", "-w", root, "-y", "2015", "-d", "2", "--no-save")
	if !domain.IsKind(err, domain.KindInputUnavailable) {
		t.Fatalf("expected input_unavailable, got %v", err)
	}
}

func TestRun_UnknownDayFails(t *testing.T) {
	root := newWorkspace(t)
	_, err := execute(t, "run", "-w", root, "-y", "2015", "-d", "25", "--no-save")
	if !domain.IsKind(err, domain.KindDayNotFound) {
		t.Fatalf("expected day_not_found, got %v", err)
	}
}

func TestCheck_ExitsNonZeroOnMismatch(t *testing.T) {
	root := newWorkspace(t)
	writeInput(t, root, 2015, 2, "2x3x4\n")

	answers := filepath.Join(root, "answers.yaml")
	if err := os.WriteFile(answers, []byte("\"2015\":\n  \"2\": { part_one: \"58\", part_two: \"34\" }\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := execute(t, "check", "-w", root)
	if err != nil {
		t.Fatalf("check: %v\n%s", err, out)
	}
	if !strings.Contains(out, "2 match") {
		t.Fatalf("unexpected output:\n%s", out)
	}

	if err := os.WriteFile(answers, []byte("\"2015\":\n  \"2\": { part_one: \"57\" }\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err = execute(t, "check", "-w", root)
	if err == nil {
		t.Fatalf("expected mismatch error, got output:\n%s", out)
	}
	if !strings.Contains(out, "MISMATCH") {
		t.Fatalf("expected mismatch line, got:\n%s", out)
	}
}

func TestList_WorksOutsideWorkspace(t *testing.T) {
	out, err := execute(t, "list", "-w", t.TempDir(), "-y", "2019")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "2019/day01") || strings.Contains(out, "2021/") {
		t.Fatalf("unexpected list output:\n%s", out)
	}
}

func TestFetch_RequiresSession(t *testing.T) {
	root := newWorkspace(t)
	t.Setenv("AOC_SESSION", "")
	_, err := execute(t, "fetch", "-w", root, "-y", "2015", "-d", "2")
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config, got %v", err)
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out, "aoc ") {
		t.Fatalf("unexpected version output %q", out)
	}
}

func TestAll_JSONOutput(t *testing.T) {
	root := newWorkspace(t)
	writeInput(t, root, 2015, 2, "2x3x4\n")

	out, err := execute(t, "all", "-w", root, "-y", "2015", "--format", "json", "--no-save")
	if err != nil {
		t.Fatalf("all: %v\n%s", err, out)
	}

	var payload struct {
		RunID   string          `json:"run_id"`
		Results []domain.Result `json:"results"`
		Errors  []*string       `json:"errors"`
	}
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if payload.RunID != "" {
		t.Errorf("expected no run id with --no-save, got %q", payload.RunID)
	}
	if len(payload.Results) != 1 || len(payload.Errors) != 1 {
		t.Fatalf("expected one result and one error slot, got %d/%d", len(payload.Results), len(payload.Errors))
	}
	if payload.Errors[0] != nil {
		t.Errorf("expected null error, got %q", *payload.Errors[0])
	}
	res := payload.Results[0]
	if res.PartOne.Value != "58" || res.PartTwo.Value != "34" {
		t.Errorf("unexpected answers %q / %q", res.PartOne.Value, res.PartTwo.Value)
	}
}
