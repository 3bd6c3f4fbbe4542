package textfile

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/contacts/internal/contact"
)

func storeOf(pairs ...string) *contact.Store {
	s := contact.NewStore()
	for i := 0; i+1 < len(pairs); i += 2 {
		s.Add(pairs[i], pairs[i+1])
	}
	return s
}

func assertSameContacts(t *testing.T, want, got *contact.Store) {
	t.Helper()
	w := slices.Collect(want.All())
	g := slices.Collect(got.All())
	require.Len(t, g, len(w))
	for i := range w {
		assert.True(t, w[i].Equal(g[i]), "index %d: want %v, got %v", i, w[i], g[i])
	}
}

func assertGoldenFile(t *testing.T, name, path string) {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, data)
}

func TestSave_Golden(t *testing.T) {
	tests := []struct {
		golden string
		store  *contact.Store
	}{
		{"ada_bob", storeOf("Ada", "555-0100", "Bob", "555-0200")},
		{"duplicates_and_blanks", storeOf("Ada Lovelace", "+44 20 7946 0000", "", "", "Ada", "ext. 12")},
	}

	for _, tt := range tests {
		t.Run(tt.golden, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "contacts.txt")
			require.NoError(t, Save(tt.store, path))
			assertGoldenFile(t, tt.golden, path)
		})
	}
}

func TestSave_EmptyStoreTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.txt")
	require.NoError(t, os.WriteFile(path, []byte("Name: Old\nNumber: 0\n"), 0644))

	require.NoError(t, Save(contact.NewStore(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestSave_OpenFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "contacts.txt")

	err := Save(storeOf("Ada", "1"), path)
	require.ErrorIs(t, err, ErrOpen)

	var openErr *OpenError
	require.ErrorAs(t, err, &openErr)
	assert.Equal(t, OpSave, openErr.Op)
	assert.Equal(t, path, openErr.Path)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, statErr := os.Stat(path)
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		store *contact.Store
	}{
		{"empty", storeOf()},
		{"single", storeOf("Ada", "555-0100")},
		{"duplicates", storeOf("Ada", "1", "Ada", "2", "Bob", "3")},
		{"blank fields", storeOf("", "", "Bob", "")},
		{"delimiters inside values", storeOf("Name: Ada", "Number: 1")},
		{"unicode", storeOf("Zoë Ωmega", "+33 6 12 34 56 78")},
		{"decomposed unicode", storeOf("Jose\u0301", "1")},
		{"carriage returns", storeOf("Ada\r", "1\r", "\rBob", "2")},
		{"long name", storeOf(strings.Repeat("x", 1<<20), "1")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "contacts.txt")
			require.NoError(t, Save(tt.store, path))

			loaded := contact.NewStore()
			n, err := Load(loaded, path)
			require.NoError(t, err)
			assert.Equal(t, tt.store.Len(), n)
			assertSameContacts(t, tt.store, loaded)
		})
	}
}

func TestLoad_ClearsDestinationFirst(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.txt")
	require.NoError(t, Save(storeOf("Bob", "2"), path))

	dst := storeOf("Stale", "0", "Older", "9")
	n, err := Load(dst, path)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assertSameContacts(t, storeOf("Bob", "2"), dst)
}

func TestLoad_LongLineKeepsEveryRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.txt")
	long := strings.Repeat("y", 2<<20)
	require.NoError(t, Save(storeOf("Ada", "1", long, "2", "Bob", "3"), path))

	dst := storeOf("Stale", "0")
	n, err := Load(dst, path)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assertSameContacts(t, storeOf("Ada", "1", long, "2", "Bob", "3"), dst)
}

func TestLoad_OpenFailureLeavesStoreUnchanged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.txt")
	dst := storeOf("Ada", "1")

	n, err := Load(dst, path)
	require.ErrorIs(t, err, ErrOpen)
	assert.Equal(t, 0, n)

	var openErr *OpenError
	require.ErrorAs(t, err, &openErr)
	assert.Equal(t, OpLoad, openErr.Op)
	assertSameContacts(t, storeOf("Ada", "1"), dst)
}

func TestLoad_StopsAtFirstMalformedPair(t *testing.T) {
	for _, n := range []int{0, 1, 3} {
		t.Run(strings.Repeat("pair", n), func(t *testing.T) {
			var b strings.Builder
			want := contact.NewStore()
			for i := range n {
				name := "Person " + string(rune('A'+i))
				b.WriteString(NamePrefix + name + "\n" + NumberPrefix + "555\n")
				want.Add(name, "555")
			}
			b.WriteString("garbage\n")
			b.WriteString("Name: Never\nNumber: Read\n")

			path := filepath.Join(t.TempDir(), "contacts.txt")
			require.NoError(t, os.WriteFile(path, []byte(b.String()), 0644))

			dst := storeOf("Stale", "0")
			count, err := Load(dst, path)
			require.ErrorIs(t, err, ErrMalformed)
			assert.Equal(t, n, count)
			assertSameContacts(t, want, dst)

			var malformed *MalformedError
			require.ErrorAs(t, err, &malformed)
			assert.Equal(t, path, malformed.Path)
			assert.Equal(t, 2*n+1, malformed.Line)
		})
	}
}

func TestLoad_DanglingLastLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.txt")
	require.NoError(t, os.WriteFile(path, []byte("Name: Ada\nNumber: 1\nName: Bob\n"), 0644))

	dst := contact.NewStore()
	n, err := Load(dst, path)
	require.ErrorIs(t, err, ErrMalformed)
	assert.Equal(t, 1, n)
	assertSameContacts(t, storeOf("Ada", "1"), dst)
}

func TestLoad_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.txt")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	dst := storeOf("Stale", "0")
	n, err := Load(dst, path)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Equal(t, 0, dst.Len())
}

func TestExampleScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.txt")
	s := contact.NewStore()
	s.Add("Ada", "555-0100")
	s.Add("Bob", "555-0200")
	require.NoError(t, Save(s, path))
	assertGoldenFile(t, "ada_bob", path)

	s.Clear()
	n, err := Load(s, path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assertSameContacts(t, storeOf("Ada", "555-0100", "Bob", "555-0200"), s)

	require.NoError(t, s.EditPhone("Bob", "555-9999"))
	require.NoError(t, s.DeleteByName("Ada"))
	assertSameContacts(t, storeOf("Bob", "555-9999"), s)
}
