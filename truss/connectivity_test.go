package truss_test

import (
	"testing"

	"github.com/katalvlaran/truss/truss"
	"github.com/stretchr/testify/require"
)

func line(ids ...int) []truss.Node {
	nodes := make([]truss.Node, len(ids))
	for i, id := range ids {
		nodes[i] = truss.Node{ID: id, Pos: truss.Point{X: float32(i)}}
	}

	return nodes
}

func TestComponents(t *testing.T) {
	tests := []struct {
		name  string
		nodes []truss.Node
		beams []truss.Beam
		want  [][]int
		lost  []int
	}{
		{
			name:  "empty",
			nodes: nil,
			want:  nil,
		},
		{
			name:  "chain",
			nodes: line(1, 2, 3),
			beams: []truss.Beam{{ID: 1, N1: 2, N2: 3}, {ID: 2, N1: 1, N2: 2}},
			want:  [][]int{{0, 1, 2}},
		},
		{
			name:  "two islands",
			nodes: line(1, 2, 3, 4),
			beams: []truss.Beam{{ID: 1, N1: 1, N2: 3}, {ID: 2, N1: 2, N2: 4}},
			want:  [][]int{{0, 2}, {1, 3}},
			lost:  []int{2, 4},
		},
		{
			name:  "isolated node",
			nodes: line(7, 8, 9),
			beams: []truss.Beam{{ID: 1, N1: 7, N2: 8}},
			want:  [][]int{{0, 1}, {2}},
			lost:  []int{9},
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			s, err := truss.New(tc.nodes, tc.beams, nil, nil, nil)
			require.NoError(t, err)
			require.Equal(t, tc.want, s.Components())
			require.Equal(t, tc.lost, s.Disconnected())
		})
	}
}
