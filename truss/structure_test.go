package truss_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/truss/table"
	"github.com/katalvlaran/truss/truss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const triangleSrc = `Nodes
1 0.0 0.0
2 3.0 0.0
3 0.0 4.0
%
Beams
10 1 2
11 2 3
12 3 1
%
Forces
1 3 0.0 5.0
%
Constraints
1 1 0.0
2 1 1.5707964
3 2 1.5707964
%
Walls
1 0.5 -1.0 1.5707964 1
%
`

func mustTable(t *testing.T, src string) *table.Table {
	t.Helper()
	tb, err := table.Parse([]byte(src), "test")
	require.NoError(t, err)

	return tb
}

func TestFromTable_Triangle(t *testing.T) {
	s, err := truss.FromTable(mustTable(t, triangleSrc))
	require.NoError(t, err)

	require.Len(t, s.Nodes, 3)
	require.Equal(t, truss.Point{X: 3, Y: 0}, s.Nodes[1].Pos)

	require.Len(t, s.Beams, 3)
	lengths := []float32{3, 5, 4}
	for i, b := range s.Beams {
		assert.InDelta(t, lengths[i], b.Length, 1e-6, "beam %d", b.ID)
	}
	i1, i2 := s.Beams[1].Ends()
	require.Equal(t, []int{1, 2}, []int{i1, i2})

	require.Len(t, s.Forces, 1)
	require.Equal(t, 2, s.Forces[0].NodeIndex())
	require.Equal(t, float32(5), s.Forces[0].Mag)

	require.Len(t, s.Constraints, 3)
	require.Equal(t, 1, s.Constraints[2].NodeIndex())

	require.Equal(t, []truss.Wall{{ID: 1, M: 0.5, B: -1, Theta: 1.5707964, Above: true}}, s.Walls)
	require.False(t, s.Solved())
}

func TestFromTable_WallsOptional(t *testing.T) {
	src := strings.SplitN(triangleSrc, "Walls", 2)[0]
	s, err := truss.FromTable(mustTable(t, src))
	require.NoError(t, err)
	require.Empty(t, s.Walls)
}

func TestFromTable_MissingSection(t *testing.T) {
	for _, name := range []string{truss.SectionNodes, truss.SectionBeams, truss.SectionForces, truss.SectionConstraints} {
		name := name
		t.Run(name, func(t *testing.T) {
			src := strings.Replace(triangleSrc, name+"\n", "Other"+name+"\n", 1)
			_, err := truss.FromTable(mustTable(t, src))
			require.ErrorIs(t, err, truss.ErrSchema)
			require.Contains(t, err.Error(), name)
		})
	}

	_, err := truss.FromTable(nil)
	require.ErrorIs(t, err, truss.ErrSchema)
}

func TestFromTable_SchemaErrors(t *testing.T) {
	cases := []struct {
		name string
		old  string
		new  string
	}{
		{"int coordinate", "2 3.0 0.0", "2 3 0.0"},
		{"missing coordinate", "3 0.0 4.0", "3 0.0"},
		{"float node ref", "10 1 2", "10 1.0 2"},
		{"missing magnitude", "1 3 0.0 5.0", "1 3 0.0"},
		{"int constraint angle", "1 1 0.0", "1 1 0"},
		{"wall side as float", "1.5707964 1\n", "1.5707964 1.0\n"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			src := strings.Replace(triangleSrc, tc.old, tc.new, 1)
			_, err := truss.FromTable(mustTable(t, src))
			require.ErrorIs(t, err, truss.ErrSchema)
			require.ErrorIs(t, err, table.ErrSchema)
		})
	}
}

func TestFromTable_ValidationErrors(t *testing.T) {
	cases := []struct {
		name, old, new, want string
	}{
		{"dangling beam", "11 2 3", "11 2 9", "beam 11: unknown node 9"},
		{"dangling force", "1 3 0.0 5.0", "1 7 0.0 5.0", "force 1: unknown node 7"},
		{"dangling constraint", "3 2 1.5707964", "3 8 1.5707964", "constraint 3: unknown node 8"},
		{"duplicate node", "3 0.0 4.0", "2 0.0 4.0", "node 2: duplicate id"},
		{"self loop", "12 3 1", "12 3 3", "beam 12: zero length"},
		{"coincident nodes", "2 3.0 0.0", "2 0.0 0.0", "beam 10: zero length"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			src := strings.Replace(triangleSrc, tc.old, tc.new, 1)
			_, err := truss.FromTable(mustTable(t, src))
			require.ErrorIs(t, err, truss.ErrValidation)
			require.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestNew_CopiesAndResolves(t *testing.T) {
	nodes := []truss.Node{{ID: 5, Pos: truss.Point{}}, {ID: 6, Pos: truss.Point{X: 1}}}
	beams := []truss.Beam{{ID: 1, N1: 5, N2: 6}}

	s, err := truss.New(nodes, beams, nil, nil, nil)
	require.NoError(t, err)
	require.Equal(t, float32(1), s.Beams[0].Length)
	require.Zero(t, beams[0].Length, "caller slice untouched")

	_, err = truss.New(nodes, []truss.Beam{{ID: 1, N1: 5, N2: 4}}, nil, nil, nil)
	require.ErrorIs(t, err, truss.ErrValidation)
}

func TestLookups(t *testing.T) {
	s, err := truss.FromTable(mustTable(t, triangleSrc))
	require.NoError(t, err)

	idx, ok := s.NodeIndex(3)
	require.True(t, ok)
	require.Equal(t, 2, idx)

	n, ok := s.Node(2)
	require.True(t, ok)
	require.Equal(t, float32(3), n.Pos.X)

	_, ok = s.Node(42)
	require.False(t, ok)

	b, ok := s.Beam(12)
	require.True(t, ok)
	require.Equal(t, 3, b.N1)
	_, ok = s.Beam(1)
	require.False(t, ok)

	c, ok := s.Constraint(2)
	require.True(t, ok)
	require.Equal(t, 1, c.Node)
}

func TestResolveAfterEdits(t *testing.T) {
	s, err := truss.FromTable(mustTable(t, triangleSrc))
	require.NoError(t, err)

	// Node lookups follow the slice even before Resolve runs again.
	s.Nodes[0], s.Nodes[2] = s.Nodes[2], s.Nodes[0]
	idx, ok := s.NodeIndex(1)
	require.True(t, ok)
	require.Equal(t, 2, idx)

	require.NoError(t, s.Resolve())
	require.Equal(t, 0, s.Forces[0].NodeIndex())

	s.Forces = append(s.Forces, truss.Force{ID: 9, Node: 99})
	err = s.Resolve()
	require.ErrorIs(t, err, truss.ErrValidation)
	require.Contains(t, err.Error(), "unknown node 99")
	idx, ok = s.NodeIndex(2)
	require.True(t, ok, "lookups survive a failed Resolve")
	require.Equal(t, 1, idx)
}

func TestResetClearsSolution(t *testing.T) {
	s, err := truss.FromTable(mustTable(t, triangleSrc))
	require.NoError(t, err)

	s.Beams[0].Force = 2
	s.Constraints[1].Force = -3
	s.MarkSolved()
	require.True(t, s.Solved())

	s.Reset()
	require.False(t, s.Solved())
	require.Zero(t, s.Beams[0].Force)
	require.Zero(t, s.Constraints[1].Force)
}
