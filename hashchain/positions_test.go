package hashchain

import (
	"reflect"
	"testing"
)

func TestPebblePositions(t *testing.T) {
	type args struct {
		length uint64
	}
	tests := []struct {
		name string
		args args
		want []uint64
	}{
		{"length 128 gives seven positions", args{128}, []uint64{2, 4, 8, 16, 32, 64, 128}},
		{"length 2 gives one position", args{2}, []uint64{2}},
		{"length 1 gives the empty set", args{1}, []uint64{}},
		{"length 0 is invalid and gives nil", args{0}, nil},
		{"length 12 is invalid and gives nil", args{12}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PebblePositions(tt.args.length); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("PebblePositions() = %v, want %v", got, tt.want)
			}
		})
	}
}
