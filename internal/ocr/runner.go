package ocr

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"

	"idscan-backend/internal/shared/telemetry"
)

// Runner lets us stub external commands in tests.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	start := time.Now()

	cmd := exec.CommandContext(ctx, name, args...)
	var out, errb bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errb

	err := cmd.Run()
	dur := time.Since(start)

	if err != nil {
		telemetry.Error("ocr.exec.failed", map[string]any{
			"cmd":         name,
			"args":        strings.Join(args, " "),
			"duration_ms": dur.Milliseconds(),
			"error":       err.Error(),
			"stderr":      truncate(errb.String(), 8<<10),
		})
	} else {
		telemetry.Info("ocr.exec.ok", map[string]any{
			"cmd":          name,
			"args":         strings.Join(args, " "),
			"duration_ms":  dur.Milliseconds(),
			"stdout_bytes": out.Len(),
		})
	}

	return out.Bytes(), errb.Bytes(), err
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "...(truncated)"
}
