package argparse

import (
	"testing"
	"unsafe"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func long(s string) Name { return LongName(s) }
func short(c rune) Name  { return ShortName(c) }

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		tokens []string
		want   []Entry
	}{
		{
			name:   "empty",
			tokens: []string{},
			want:   []Entry{},
		},
		{
			name:   "positionals",
			tokens: []string{"add", "item1", "item 2"},
			want:   []Entry{Positional("add"), Positional("item1"), Positional("item 2")},
		},
		{
			name:   "terminator latches positional mode",
			tokens: []string{"--", "-x", "--foo"},
			want:   []Entry{Positional("--"), Positional("-x"), Positional("--foo")},
		},
		{
			name:   "repeated terminator stays positional",
			tokens: []string{"-v", "--", "--", "--name=value", "-"},
			want: []Entry{
				Flag(short('v')),
				Positional("--"),
				Positional("--"),
				Positional("--name=value"),
				Positional("-"),
			},
		},
		{
			name:   "long with inline value",
			tokens: []string{"--name=value"},
			want:   []Entry{Option(long("name"), "value")},
		},
		{
			name:   "long with empty inline value",
			tokens: []string{"--name="},
			want:   []Entry{Option(long("name"), "")},
		},
		{
			name:   "long inline value split at first equals",
			tokens: []string{"--query=a=b=c"},
			want:   []Entry{Option(long("query"), "a=b=c")},
		},
		{
			name:   "long consumes next token",
			tokens: []string{"--output", "file.txt", "rest"},
			want:   []Entry{Option(long("output"), "file.txt"), Positional("rest")},
		},
		{
			name:   "long consumes empty next token",
			tokens: []string{"--output", ""},
			want:   []Entry{Option(long("output"), "")},
		},
		{
			name:   "long followed by long",
			tokens: []string{"--foo", "--bar"},
			want:   []Entry{Flag(long("foo")), Flag(long("bar"))},
		},
		{
			name:   "long followed by terminator",
			tokens: []string{"--foo", "--", "bar"},
			want:   []Entry{Flag(long("foo")), Positional("--"), Positional("bar")},
		},
		{
			name:   "last long is a flag",
			tokens: []string{"file", "--force"},
			want:   []Entry{Positional("file"), Flag(long("force"))},
		},
		{
			name:   "negative number is not a value",
			tokens: []string{"--offset", "-5"},
			want:   []Entry{Flag(long("offset")), Flag(short('5'))},
		},
		{
			name:   "cluster consumes next token",
			tokens: []string{"-abc", "val"},
			want: []Entry{
				Option(short('a'), "val"),
				Option(short('b'), "val"),
				Option(short('c'), "val"),
			},
		},
		{
			name:   "cluster followed by flag",
			tokens: []string{"-abc", "-d"},
			want: []Entry{
				Flag(short('a')),
				Flag(short('b')),
				Flag(short('c')),
				Flag(short('d')),
			},
		},
		{
			name:   "cluster with inline value",
			tokens: []string{"-ab=x=y", "pos"},
			want: []Entry{
				Option(short('a'), "x=y"),
				Option(short('b'), "x=y"),
				Positional("pos"),
			},
		},
		{
			name:   "short with empty inline value",
			tokens: []string{"-o="},
			want:   []Entry{Option(short('o'), "")},
		},
		{
			name:   "short consumes next token",
			tokens: []string{"-o", "out", "-v"},
			want:   []Entry{Option(short('o'), "out"), Flag(short('v'))},
		},
		{
			name:   "cluster splits per character",
			tokens: []string{"-éß"},
			want:   []Entry{Flag(short('é')), Flag(short('ß'))},
		},
		{
			name:   "value is never reclassified",
			tokens: []string{"-o", "value", "--name", "other"},
			want:   []Entry{Option(short('o'), "value"), Option(long("name"), "other")},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Parse(tt.tokens)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got.Entries()); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.tokens, diff)
			}
		})
	}
}

func TestParseMalformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		tokens []string
		index  int
	}{
		{name: "bare dash", tokens: []string{"-"}, index: 0},
		{name: "bare dash after positional", tokens: []string{"file", "-"}, index: 1},
		{name: "bare dash after flag", tokens: []string{"--force", "-"}, index: 1},
		{name: "long without name", tokens: []string{"--=value"}, index: 0},
		{name: "short without name", tokens: []string{"-v", "-=value"}, index: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Parse(tt.tokens)
			require.Error(t, err)
			assert.Nil(t, got)
			require.ErrorIs(t, err, ErrMalformedArgument)

			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.index, perr.Index)
			assert.Equal(t, tt.tokens[tt.index], perr.Token)
		})
	}
	t.Run("error message", func(t *testing.T) {
		t.Parallel()
		_, err := Parse([]string{"a", "-"})
		require.Error(t, err)
		assert.EqualError(t, err, `argument 1 "-": malformed argument`)
	})
}

func TestParseWithRegistry(t *testing.T) {
	t.Parallel()

	newRegistry := func() *Registry {
		return MustBuild(
			ShortAndLong('v', "verbose"),
			Long("output"),
			Short('a'),
			Short('b'),
		)
	}

	t.Run("known names", func(t *testing.T) {
		t.Parallel()
		got, err := ParseWithRegistry([]string{"--verbose", "-ab", "x", "--output=f", "-v", "pos"}, newRegistry())
		require.NoError(t, err)
		want := []Entry{
			Flag(long("verbose")),
			Option(short('a'), "x"),
			Option(short('b'), "x"),
			Option(long("output"), "f"),
			Option(short('v'), "pos"),
		}
		if diff := cmp.Diff(want, got.Entries()); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})
	t.Run("unknown long", func(t *testing.T) {
		t.Parallel()
		got, err := ParseWithRegistry([]string{"-v", "--nope", "value"}, newRegistry())
		require.Error(t, err)
		assert.Nil(t, got)
		require.ErrorIs(t, err, ErrUnknownLong)
		var perr *ParseError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, 1, perr.Index)
		assert.Equal(t, "--nope", perr.Token)
		assert.Equal(t, LongName("nope"), perr.Name)
		assert.EqualError(t, err, `argument 1 "--nope": unknown long argument: --nope`)
	})
	t.Run("unknown long with inline value", func(t *testing.T) {
		t.Parallel()
		_, err := ParseWithRegistry([]string{"--out=file"}, newRegistry())
		require.ErrorIs(t, err, ErrUnknownLong)
	})
	t.Run("first unknown short in cluster", func(t *testing.T) {
		t.Parallel()
		_, err := ParseWithRegistry([]string{"-axzb", "value"}, newRegistry())
		require.ErrorIs(t, err, ErrUnknownShort)
		var perr *ParseError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, ShortName('x'), perr.Name)
		assert.Equal(t, 0, perr.Index)
	})
	t.Run("unknown short with inline value", func(t *testing.T) {
		t.Parallel()
		_, err := ParseWithRegistry([]string{"-q=1"}, newRegistry())
		require.ErrorIs(t, err, ErrUnknownShort)
	})
	t.Run("names after terminator are not checked", func(t *testing.T) {
		t.Parallel()
		got, err := ParseWithRegistry([]string{"--", "--nope", "-xyz"}, newRegistry())
		require.NoError(t, err)
		assert.Equal(t, []string{"--", "--nope", "-xyz"}, got.Positionals())
	})
	t.Run("malformed wins over unknown", func(t *testing.T) {
		t.Parallel()
		_, err := ParseWithRegistry([]string{"-"}, newRegistry())
		require.ErrorIs(t, err, ErrMalformedArgument)
	})
	t.Run("nil registry", func(t *testing.T) {
		t.Parallel()
		_, err := ParseWithRegistry([]string{"-v"}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "registry is nil")
	})
	t.Run("empty registry rejects every name", func(t *testing.T) {
		t.Parallel()
		_, err := ParseWithRegistry([]string{"pos", "-v"}, NewRegistry())
		require.ErrorIs(t, err, ErrUnknownShort)
	})
}

func TestParseIdempotent(t *testing.T) {
	t.Parallel()

	reg := MustBuild(ShortAndLong('o', "output"), Short('v'), Long("dry-run"))
	tokens := []string{"-vo", "out.txt", "--dry-run", "src", "--", "-v"}

	first, err := ParseWithRegistry(tokens, reg)
	require.NoError(t, err)
	second, err := ParseWithRegistry(tokens, reg)
	require.NoError(t, err)
	if diff := cmp.Diff(first.Entries(), second.Entries()); diff != "" {
		t.Errorf("second parse differs (-first +second):\n%s", diff)
	}
	assert.Equal(t, 5, first.Len())
}

func TestParseBorrowsInput(t *testing.T) {
	t.Parallel()

	tokens := []string{"--name", "value", "--key=inline"}
	got, err := Parse(tokens)
	require.NoError(t, err)
	require.Equal(t, 2, got.Len())

	// Values are views into the input, not copies.
	assert.True(t, unsafe.StringData(tokens[1]) == unsafe.StringData(got.At(0).Value))
	inline := unsafe.Add(unsafe.Pointer(unsafe.StringData(tokens[2])), len("--key="))
	assert.True(t, inline == unsafe.Pointer(unsafe.StringData(got.At(1).Value)))
}
