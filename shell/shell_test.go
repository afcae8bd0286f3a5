// SPDX-License-Identifier: EPL-2.0

package shell

import (
	"bytes"
	"errors"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/ik5/pcmextract/decode"
	"github.com/ik5/pcmextract/internal/audiotest"
	"github.com/ik5/pcmextract/playback"
	"github.com/ik5/pcmextract/session"
)

func newShell(t *testing.T, raw []byte, opts ...Option) (*Shell, *bytes.Buffer) {
	t.Helper()

	sess, err := session.New(raw, decode.DefaultConfig(len(raw)))
	if err != nil {
		t.Fatalf("session.New() error = %v", err)
	}

	var out bytes.Buffer
	return New(sess, &out, opts...), &out
}

func ramp(n int) []byte {
	raw := make([]byte, n)
	for i := range raw {
		raw[i] = byte(i)
	}
	return raw
}

func TestExec_Setters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line  string
		check func(decode.Config) bool
	}{
		{"flip 12", func(c decode.Config) bool { return c.Flip == 12 && c.Representation == decode.Custom }},
		{"mirror 0x80", func(c decode.Config) bool { return c.Mirror == 0x80 && c.Representation == decode.Custom }},
		{"offset -3", func(c decode.Config) bool { return c.Offset == -3 && c.Representation == decode.Custom }},
		{"bias 128", func(c decode.Config) bool { return c.Bias == 128 && c.Representation == decode.ExcessK }},
		{"repr ones", func(c decode.Config) bool { return c.Representation == decode.OnesComplement }},
		{"REPR SignMag", func(c decode.Config) bool { return c.Representation == decode.SignedMagnitude }},
		{"sign lsb", func(c decode.Config) bool { return c.SignBit == decode.SignLSB }},
		{"comp order2", func(c decode.Config) bool { return c.Compression == decode.Order2 }},
		{"comp 3", func(c decode.Config) bool { return c.Compression == decode.Order3 }},
		{"gain 4", func(c decode.Config) bool { return c.Gain == 4 }},
		{"stride 2", func(c decode.Config) bool { return c.Stride == 2 }},
		{"step 3", func(c decode.Config) bool { return c.Stride == 3 }},
		{"start 1", func(c decode.Config) bool { return c.StartOffset == 1 }},
		{"window 10 20", func(c decode.Config) bool { return c.WindowStart == 10 && c.WindowEnd == 20 }},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			t.Parallel()

			sh, out := newShell(t, ramp(64))
			act, err := sh.Exec(tt.line)
			if err != nil || act != Continue {
				t.Fatalf("Exec(%q) = %v, %v", tt.line, act, err)
			}
			if cfg := sh.Session().Config(); !tt.check(cfg) {
				t.Errorf("config after %q = %s", tt.line, cfg)
			}
			if !strings.Contains(out.String(), "samples") {
				t.Errorf("output = %q, want a summary", out.String())
			}
		})
	}
}

func TestExec_RejectedKeepsConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line string
		want error
	}{
		{"flip 256", ErrUsage},
		{"flip x", ErrUsage},
		{"offset 40000", ErrUsage},
		{"gain 0", ErrUsage},
		{"stride 0", ErrUsage},
		{"start -1", ErrUsage},
		{"repr nope", decode.ErrUnknownRepresentation},
		{"sign middle", decode.ErrUnknownSignBit},
		{"comp order9", decode.ErrUnknownCompression},
		{"window 64 80", decode.ErrWindowStartOutOfRange},
		{"window 20 10", decode.ErrInvalidWindow},
		{"window 5", ErrUsage},
		{"stride", ErrUsage},
		{"stride 1 2", ErrUsage},
		{"frobnicate", ErrUnknownCommand},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			t.Parallel()

			sh, _ := newShell(t, ramp(64))
			before := sh.Session().Config()
			samples := sh.Session().Samples()

			if _, err := sh.Exec(tt.line); !errors.Is(err, tt.want) {
				t.Fatalf("Exec(%q) error = %v, want %v", tt.line, err, tt.want)
			}
			if got := sh.Session().Config(); got != before {
				t.Errorf("config changed to %s", got)
			}
			if got := sh.Session().Samples(); !slicesEqual(got, samples) {
				t.Error("decoded buffer changed")
			}
		})
	}
}

func slicesEqual(a, b []int16) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestExec_BlankAndComment(t *testing.T) {
	t.Parallel()

	sh, out := newShell(t, ramp(4))
	for _, line := range []string{"", "   ", "# flip 3"} {
		if act, err := sh.Exec(line); act != Continue || err != nil {
			t.Errorf("Exec(%q) = %v, %v", line, act, err)
		}
	}
	if out.Len() != 0 {
		t.Errorf("output = %q, want none", out.String())
	}
}

func TestExec_WindowReset(t *testing.T) {
	t.Parallel()

	sh, _ := newShell(t, ramp(32))
	if _, err := sh.Exec("window 4 8"); err != nil {
		t.Fatal(err)
	}
	if sh.Session().Len() != 4 {
		t.Fatalf("Len() = %d, want 4", sh.Session().Len())
	}
	if _, err := sh.Exec("window"); err != nil {
		t.Fatal(err)
	}
	if sh.Session().Len() != 32 {
		t.Errorf("Len() = %d, want 32", sh.Session().Len())
	}
}

func TestExec_ExtremeAddressing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		lines []string
		want  int
	}{
		{"max stride after start", []string{"start 1", "stride 9223372036854775807"}, 1},
		{"max start in window", []string{"window 1 64", "start 9223372036854775807"}, 0},
		{"max window end and stride", []string{"window 63 9223372036854775807", "stride 9223372036854775807"}, 1},
		{"max start then stride", []string{"start 9223372036854775807", "stride 9223372036854775807"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sh, _ := newShell(t, ramp(64))
			for _, line := range tt.lines {
				if _, err := sh.Exec(line); err != nil {
					t.Fatalf("Exec(%q) error = %v", line, err)
				}
			}
			if got := sh.Session().Len(); got != tt.want {
				t.Errorf("Len() = %d, want %d", got, tt.want)
			}
			if got := len(sh.Session().RawSteps()); got != tt.want {
				t.Errorf("len(RawSteps()) = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestExec_Range(t *testing.T) {
	t.Parallel()

	sh, _ := newShell(t, ramp(8))
	if x0, x1 := sh.Range(); x0 != DefaultRangeStart || x1 != DefaultRangeEnd {
		t.Fatalf("Range() = %d, %d", x0, x1)
	}

	if _, err := sh.Exec("range 10 500"); err != nil {
		t.Fatal(err)
	}
	if x0, x1 := sh.Range(); x0 != 10 || x1 != 500 {
		t.Errorf("Range() = %d, %d; want 10, 500", x0, x1)
	}

	for _, line := range []string{"range 5 5", "range -1 3", "range 9 2"} {
		if _, err := sh.Exec(line); !errors.Is(err, ErrInvalidRange) {
			t.Errorf("Exec(%q) error = %v, want %v", line, err, ErrInvalidRange)
		}
	}
	if x0, x1 := sh.Range(); x0 != 10 || x1 != 500 {
		t.Errorf("Range() after rejects = %d, %d", x0, x1)
	}
}

func TestExec_Play(t *testing.T) {
	t.Parallel()

	dev := audiotest.NewFakeDevice(32000, 1, 16)
	sched := playback.NewScheduler(dev)
	sh, _ := newShell(t, []byte{1, 2, 3, 4}, WithPlayer(sched))

	if _, err := sh.Exec("play 1 3"); err != nil {
		t.Fatalf("play error = %v", err)
	}

	got := dev.Written()
	want := []float32{512.0 / 32768, 512.0 / 32768, 768.0 / 32768, 768.0 / 32768}
	if len(got) < len(want) {
		t.Fatalf("written %d values, want at least %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("out[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	for i, v := range got[len(want):] {
		if v != 0 {
			t.Fatalf("out[%d] = %v after the window, want silence", len(want)+i, v)
		}
	}

	if _, err := sh.Exec("play x"); !errors.Is(err, ErrUsage) {
		t.Errorf("play x error = %v, want %v", err, ErrUsage)
	}
}

func TestExec_PlayErrors(t *testing.T) {
	t.Parallel()

	sh, _ := newShell(t, ramp(4))
	if _, err := sh.Exec("play"); !errors.Is(err, ErrNoPlayer) {
		t.Errorf("play error = %v, want %v", err, ErrNoPlayer)
	}

	dev := audiotest.NewFakeDevice(16000, 2, 8)
	dev.StartErr = errors.New("device busy")
	sh, _ = newShell(t, ramp(4), WithPlayer(playback.NewScheduler(dev)))

	if _, err := sh.Exec("play"); !errors.Is(err, dev.StartErr) {
		t.Errorf("play error = %v, want %v", err, dev.StartErr)
	}
	if _, err := sh.Exec("playref"); !errors.Is(err, session.ErrNoReference) {
		t.Errorf("playref error = %v, want %v", err, session.ErrNoReference)
	}
	// decoding still works after a device failure
	if _, err := sh.Exec("stride 2"); err != nil {
		t.Errorf("stride error = %v", err)
	}
}

func TestExec_SaveRefPlayRef(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	dev := audiotest.NewFakeDevice(16000, 1, 32)
	sh, out := newShell(t, []byte{0x10, 0x20, 0x30, 0x40, 0x50},
		WithPlayer(playback.NewScheduler(dev)),
		WithOutput(filepath.Join(dir, "default.wav")))

	if _, err := sh.Exec("save"); err != nil {
		t.Fatalf("save error = %v", err)
	}
	if !strings.Contains(out.String(), "default.wav") {
		t.Errorf("output = %q", out.String())
	}

	aiffPath := filepath.Join(dir, "clip.aiff")
	if _, err := sh.Exec("save " + aiffPath); err != nil {
		t.Fatalf("save aiff error = %v", err)
	}

	if _, err := sh.Exec("ref " + aiffPath); err != nil {
		t.Fatalf("ref error = %v", err)
	}
	if !sh.Session().HasReference() {
		t.Fatal("no reference after ref")
	}

	if _, err := sh.Exec("playref 0 1"); err != nil {
		t.Fatalf("playref error = %v", err)
	}
	// 0x10 * 256 survives the float round trip within one LSB
	if got := dev.Written()[0] * 32768; got < 4095 || got > 4096 {
		t.Errorf("first reference sample = %v, want ~4096", got)
	}

	if _, err := sh.Exec("ref " + filepath.Join(dir, "missing.mp3")); err == nil {
		t.Error("ref missing error = nil")
	}
}

func TestExec_ShowHelpQuit(t *testing.T) {
	t.Parallel()

	sh, out := newShell(t, ramp(16))

	if _, err := sh.Exec("show"); err != nil {
		t.Fatal(err)
	}
	if s := out.String(); !strings.Contains(s, "repr=twos") || !strings.Contains(s, "input 16 bytes") {
		t.Errorf("show output = %q", s)
	}

	out.Reset()
	if _, err := sh.Exec("help"); err != nil {
		t.Fatal(err)
	}
	for _, c := range commands {
		if !strings.Contains(out.String(), c.name) {
			t.Errorf("help does not mention %s", c.name)
		}
	}

	for _, line := range []string{"quit", "exit", "q", "QUIT"} {
		if act, err := sh.Exec(line); act != Quit || err != nil {
			t.Errorf("Exec(%q) = %v, %v; want Quit", line, act, err)
		}
	}
}

func TestNames(t *testing.T) {
	t.Parallel()

	names := Names()
	for _, want := range []string{"flip", "mirror", "offset", "step", "stride", "range", "play", "quit"} {
		found := false
		for _, n := range names {
			found = found || n == want
		}
		if !found {
			t.Errorf("Names() misses %q", want)
		}
	}
}

func BenchmarkExec_Stride(b *testing.B) {
	raw := make([]byte, 1<<16)
	sess, err := session.New(raw, decode.DefaultConfig(len(raw)))
	if err != nil {
		b.Fatal(err)
	}
	sh := New(sess, &bytes.Buffer{})

	b.ReportAllocs()
	i := 0
	for b.Loop() {
		i++
		if _, err := sh.Exec("stride " + strconv.Itoa(i%4+1)); err != nil {
			b.Fatal(err)
		}
	}
}
