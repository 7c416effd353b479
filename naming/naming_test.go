package naming_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/dirq"
	"github.com/syssam/dirq/mapping"
	"github.com/syssam/dirq/naming"
	"github.com/syssam/dirq/predicate"
	"github.com/syssam/dirq/schema"
)

func personMetadata(t *testing.T) *mapping.Metadata {
	t.Helper()
	md, err := mapping.Resolve(&schema.Entity{
		Name:          "Person",
		ObjectClasses: []string{"person", "top"},
		Base:          "ou=people,dc=example,dc=com",
		Attributes: []*schema.Attribute{
			{Property: "dn", ID: true},
			{Property: "lastname", Name: "sn"},
			{Property: "firstname", Name: "givenName"},
			{Property: "uid"},
			{Property: "age", Transient: true},
		},
	})
	require.NoError(t, err)
	return md
}

func TestParseSingleSegment(t *testing.T) {
	t.Parallel()
	md := personMetadata(t)

	d, err := naming.Parse("findByLastname", md)
	require.NoError(t, err)
	assert.Equal(t, "findByLastname", d.Name())
	assert.Equal(t, 1, d.Arity())

	tree := d.Tree()
	require.Equal(t, predicate.KindComparison, tree.Kind)
	assert.Equal(t, "lastname", tree.Property)
	assert.Equal(t, predicate.OpEq, tree.Op)
	assert.Equal(t, predicate.Param{Index: 0}, tree.Value)
}

func TestParseKeywords(t *testing.T) {
	t.Parallel()
	md := personMetadata(t)

	tests := []struct {
		descriptor string
		op         predicate.Op
		negated    bool
		arity      int
	}{
		{"findByLastname", predicate.OpEq, false, 1},
		{"findByLastnameNot", predicate.OpEq, true, 1},
		{"findByLastnameLessThanEqual", predicate.OpLTE, false, 1},
		{"findByLastnameGreaterThanEqual", predicate.OpGTE, false, 1},
		{"findByLastnameIsNotNull", predicate.OpPresent, false, 0},
		{"findByLastnameNotNull", predicate.OpPresent, false, 0},
		{"findByLastnameIsNull", predicate.OpAbsent, false, 0},
		{"findByLastnameNull", predicate.OpAbsent, false, 0},
		{"findByLastnameLike", predicate.OpLike, false, 1},
		{"findByLastnameNotLike", predicate.OpHasPrefix, true, 1},
		{"findByLastnameIsNotLike", predicate.OpHasPrefix, true, 1},
		{"findByLastnameStartingWith", predicate.OpHasPrefix, false, 1},
		{"findByLastnameEndingWith", predicate.OpHasSuffix, false, 1},
		{"findByLastnameContaining", predicate.OpContains, false, 1},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.descriptor, func(t *testing.T) {
			t.Parallel()

			d, err := naming.Parse(tt.descriptor, md)
			require.NoError(t, err)
			assert.Equal(t, tt.arity, d.Arity())

			node := d.Tree()
			if tt.negated {
				require.Equal(t, predicate.KindNot, node.Kind)
				node = node.Child
			}
			require.Equal(t, predicate.KindComparison, node.Kind)
			assert.Equal(t, "lastname", node.Property)
			assert.Equal(t, tt.op, node.Op)
		})
	}
}

func TestParseCombinators(t *testing.T) {
	t.Parallel()
	md := personMetadata(t)

	t.Run("and", func(t *testing.T) {
		t.Parallel()

		d, err := naming.Parse("findByLastnameAndFirstname", md)
		require.NoError(t, err)
		tree := d.Tree()
		require.Equal(t, predicate.KindAnd, tree.Kind)
		require.Len(t, tree.Children, 2)
		assert.Equal(t, "lastname", tree.Children[0].Property)
		assert.Equal(t, "firstname", tree.Children[1].Property)
		assert.Equal(t, 2, d.Arity())
	})

	t.Run("or", func(t *testing.T) {
		t.Parallel()

		d, err := naming.Parse("findByLastnameOrFirstname", md)
		require.NoError(t, err)
		require.Equal(t, predicate.KindOr, d.Tree().Kind)
	})

	t.Run("three segments stay flat", func(t *testing.T) {
		t.Parallel()

		d, err := naming.Parse("findByLastnameAndFirstnameAndUid", md)
		require.NoError(t, err)
		tree := d.Tree()
		require.Equal(t, predicate.KindAnd, tree.Kind)
		require.Len(t, tree.Children, 3)
		assert.Equal(t, 3, d.Arity())
	})

	t.Run("keyword before combinator", func(t *testing.T) {
		t.Parallel()

		d, err := naming.Parse("findByLastnameNotAndFirstnameIsNull", md)
		require.NoError(t, err)
		tree := d.Tree()
		require.Equal(t, predicate.KindAnd, tree.Kind)
		require.Len(t, tree.Children, 2)
		assert.Equal(t, predicate.KindNot, tree.Children[0].Kind)
		assert.Equal(t, predicate.OpAbsent, tree.Children[1].Op)
		assert.Equal(t, 1, d.Arity())
	})

	t.Run("mixed and or rejected", func(t *testing.T) {
		t.Parallel()

		_, err := naming.Parse("findByLastnameAndFirstnameOrUid", md)
		require.Error(t, err)
		assert.True(t, dirq.IsParseError(err))
		assert.Contains(t, err.Error(), "ambiguous")
	})
}

func TestParseErrors(t *testing.T) {
	t.Parallel()
	md := personMetadata(t)

	tests := []struct {
		name       string
		descriptor string
		want       string
	}{
		{"wrong verb", "getByLastname", "findBy"},
		{"no property", "findBy", "names no property"},
		{"unknown property", "findByNickname", "no known property"},
		{"unknown keyword", "findByLastnameBetween", "keyword"},
		{"transient property", "findByAge", "transient"},
		{"dangling combinator", "findByLastnameAnd", "keyword"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := naming.Parse(tt.descriptor, md)
			require.Error(t, err)
			assert.True(t, dirq.IsParseError(err))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParseDeterministic(t *testing.T) {
	t.Parallel()
	md := personMetadata(t)

	d1, err := naming.Parse("findByLastnameAndFirstnameContaining", md)
	require.NoError(t, err)
	d2, err := naming.Parse("findByLastnameAndFirstnameContaining", md)
	require.NoError(t, err)
	assert.Equal(t, d1.Tree(), d2.Tree())
	assert.Equal(t, d1.Arity(), d2.Arity())
}

func TestDescriptorBind(t *testing.T) {
	t.Parallel()
	md := personMetadata(t)

	d, err := naming.Parse("findByLastnameAndFirstnameIsNotNull", md)
	require.NoError(t, err)
	require.Equal(t, 1, d.Arity())

	bound, err := d.Bind("Smith")
	require.NoError(t, err)
	assert.Equal(t, "Smith", bound.Children[0].Value)

	// Template stays unbound.
	assert.Equal(t, predicate.Param{Index: 0}, d.Tree().Children[0].Value)

	_, err = d.Bind()
	assert.True(t, dirq.IsCompileError(err))
}

func TestCache(t *testing.T) {
	t.Parallel()
	md := personMetadata(t)

	var c naming.Cache
	d1, err := c.Parse("findByLastname", md)
	require.NoError(t, err)
	d2, err := c.Parse("findByLastname", md)
	require.NoError(t, err)
	assert.Same(t, d1, d2)

	_, err = c.Parse("findByNickname", md)
	assert.True(t, dirq.IsParseError(err))
}
