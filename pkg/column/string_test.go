package column

import (
	"fmt"
	"testing"

	"github.com/kaitokuro/tablesaw/pkg/saw"
)

func TestNewStringColumnPicksNarrowestKeyWidth(t *testing.T) {
	tests := []struct {
		name   string
		unique int
		want   saw.KeyWidth
	}{
		{"single value", 1, saw.KeyWidthByte},
		{"at byte boundary", 127, saw.KeyWidthByte},
		{"just over byte boundary", 128, saw.KeyWidthShort},
		{"at short boundary", 32767, saw.KeyWidthShort},
		{"just over short boundary", 32768, saw.KeyWidthInt},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			values := make([]string, tc.unique)
			for i := range values {
				values[i] = fmt.Sprintf("v%d", i)
			}
			sc := NewStringColumn("s", values)
			if got := sc.Dictionary().KeyWidth(); got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
			if got := len(sc.Dictionary().Entries()); got != tc.unique {
				t.Errorf("unique count: got %d, want %d", got, tc.unique)
			}
		})
	}
}

func TestNewStringColumnDictionaryCounts(t *testing.T) {
	sc := NewStringColumn("s", []string{"a", "b", "a", "a", "c", "b"})
	dict := sc.Dictionary()

	total := 0
	for _, n := range dict.Counts() {
		total += int(n)
	}
	if total != 6 {
		t.Errorf("counts sum to %d, want 6", total)
	}

	want := map[string]int32{"a": 3, "b": 2, "c": 1}
	got := map[string]int32{}
	for k, v := range dict.Entries() {
		got[v] = dict.Counts()[k]
	}
	for k, n := range want {
		if got[k] != n {
			t.Errorf("count for %q: got %d, want %d", k, got[k], n)
		}
	}
}

func TestStringColumnGetRoundTrip(t *testing.T) {
	values := []string{"x", "y", "x", "z"}
	sc := NewStringColumn("s", values)
	for i, v := range values {
		if got := sc.Get(i); got != v {
			t.Errorf("Get(%d): got %q, want %q", i, got, v)
		}
	}
}
