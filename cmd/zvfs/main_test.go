package main

import (
	"testing"

	"github.com/liuzzle/zvfs/internal/zvfs"
)

func TestVerbsArgCounts(t *testing.T) {
	wantFile := map[string]bool{
		"mkfs": false, "gifs": false, "lsfs": false, "dfrgfs": false,
		"addfs": true, "getfs": true, "rmfs": true, "catfs": true,
	}
	vs := verbs()
	if len(vs) != len(wantFile) {
		t.Fatalf("verbs() has %d entries, want %d", len(vs), len(wantFile))
	}
	for name, wantNeedFile := range wantFile {
		v, ok := vs[name]
		if !ok {
			t.Errorf("missing verb %q", name)
			continue
		}
		if v.needFile != wantNeedFile {
			t.Errorf("verb %q needFile = %v, want %v", name, v.needFile, wantNeedFile)
		}
		if v.fn == nil {
			t.Errorf("verb %q has nil fn", name)
		}
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{zvfs.NewError(zvfs.KindBadArguments, "main", nil), 2},
		{zvfs.NewError(zvfs.KindNotFound, "main", nil), 1},
		{zvfs.NewError(zvfs.KindHostIo, "main", nil), 1},
	}
	for _, tt := range tests {
		if got := exitCode(tt.err); got != tt.want {
			t.Errorf("exitCode(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
