package hashchain

import "testing"

func TestPebbleString(t *testing.T) {
	p := Pebble{
		StartIncr:   6,
		DestIncr:    4,
		Position:    2,
		Destination: 2,
		Value:       []byte{0xde, 0xad, 0xbe, 0xef},
	}
	want := "Pebble{start_incr: 6, dest_incr: 4, position: 2, destination: 2, value: deadbeef}"
	if got := p.String(); got != want {
		t.Errorf("Pebble.String() = %v, want %v", got, want)
	}
}
