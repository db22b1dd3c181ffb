package words_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/internal/words"
)

func TestSelectTarget(t *testing.T) {
	rq := require.New(t)

	d := words.New([]string{"slate", "crane", "truth"}, nil, words.WithPicker(func(n int) (int, error) {
		rq.Equal(3, n)
		return 1, nil
	}))

	w, err := d.SelectTarget()
	rq.NoError(err)
	rq.Equal("crane", w)
}

func TestSelectTargetRandom(t *testing.T) {
	rq := require.New(t)

	d, err := words.Load(words.Source{})
	rq.NoError(err)

	for i := 0; i < 50; i++ {
		w, err := d.SelectTarget()
		rq.NoError(err)
		rq.Len(w, 5)
		rq.True(d.IsAnswer(w))
	}
}

func TestSelectTargetEmpty(t *testing.T) {
	rq := require.New(t)

	d := words.New(nil, []string{"slate"})
	w, err := d.SelectTarget()
	rq.ErrorIs(err, words.ErrEmptyDictionary)
	rq.Empty(w)

	_, err = d.Answer(0)
	rq.ErrorIs(err, words.ErrEmptyDictionary)
}

func TestSelectTargetPickerError(t *testing.T) {
	rq := require.New(t)
	boom := errors.New("boom")

	d := words.New([]string{"slate"}, nil, words.WithPicker(func(int) (int, error) { return 0, boom }))
	_, err := d.SelectTarget()
	rq.ErrorIs(err, boom)
}

func TestIsValidWord(t *testing.T) {
	d := words.New([]string{"audio", "Slate "}, []string{"abbes", "toolong", "ab1de"})

	testCases := []struct {
		name      string
		candidate string
		valid     bool
	}{
		{name: "answer", candidate: "audio", valid: true},
		{name: "answer normalized on load", candidate: "slate", valid: true},
		{name: "allowed guess", candidate: "abbes", valid: true},
		{name: "upper case", candidate: "AUDIO", valid: true},
		{name: "surrounding space", candidate: " abbes\n", valid: true},
		{name: "unknown word", candidate: "xoxox", valid: false},
		{name: "empty", candidate: "", valid: false},
		{name: "too long", candidate: "toolong", valid: false},
		{name: "non letters", candidate: "ab1de", valid: false},
		{name: "non ascii", candidate: "crème", valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.valid, d.IsValidWord(tc.candidate))
		})
	}
}

func TestNewDeduplicates(t *testing.T) {
	rq := require.New(t)

	d := words.New([]string{"slate", "SLATE", "crane", "bad"}, []string{"crane", "abbes"})
	rq.Equal([]string{"slate", "crane"}, d.Answers())

	a, g := d.Stats()
	rq.Equal(2, a)
	rq.Equal(3, g)

	rq.True(d.IsAnswer("Crane"))
	rq.False(d.IsAnswer("abbes"))

	w, err := d.Answer(3)
	rq.NoError(err)
	rq.Equal("crane", w)
}

func TestAnswersIsACopy(t *testing.T) {
	rq := require.New(t)

	d := words.New([]string{"slate"}, nil)
	got := d.Answers()
	got[0] = "zzzzz"
	rq.Equal([]string{"slate"}, d.Answers())
}

func TestLoadEmbedded(t *testing.T) {
	rq := require.New(t)

	d, err := words.Load(words.Source{})
	rq.NoError(err)
	rq.True(d.IsValidWord("audio"))
	rq.True(d.IsValidWord("abbes"))
	rq.False(d.IsValidWord("xoxox"))
	rq.False(d.IsAnswer("abbes"))

	a, g := d.Stats()
	rq.Positive(a)
	rq.Greater(g, a)
}

func writeList(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadFiles(t *testing.T) {
	answers := writeList(t, "answers.txt", "# comment\nfence\n\nTRUTH\n")
	allowed := writeList(t, "allowed.txt", "eeece\nefece\n")

	t.Run("both files", func(t *testing.T) {
		rq := require.New(t)

		d, err := words.Load(words.Source{AnswersFile: answers, AllowedFile: allowed})
		rq.NoError(err)
		rq.Equal([]string{"fence", "truth"}, d.Answers())
		rq.True(d.IsValidWord("eeece"))
		rq.False(d.IsValidWord("audio"))
	})

	t.Run("allowed only", func(t *testing.T) {
		rq := require.New(t)

		d, err := words.Load(words.Source{AllowedFile: allowed})
		rq.NoError(err)
		rq.Equal([]string{"eeece", "efece"}, d.Answers())
	})

	t.Run("answers only", func(t *testing.T) {
		rq := require.New(t)

		d, err := words.Load(words.Source{AnswersFile: answers})
		rq.NoError(err)
		rq.Equal([]string{"fence", "truth"}, d.Answers())
		rq.True(d.IsValidWord("abbes"))
	})

	t.Run("missing file", func(t *testing.T) {
		rq := require.New(t)

		_, err := words.Load(words.Source{AllowedFile: filepath.Join(t.TempDir(), "nope.txt")})
		rq.ErrorIs(err, os.ErrNotExist)
	})

	t.Run("no usable answers", func(t *testing.T) {
		rq := require.New(t)

		empty := writeList(t, "empty.txt", "# nothing\ntoo long words\n")
		_, err := words.Load(words.Source{AnswersFile: empty, AllowedFile: allowed})
		rq.ErrorIs(err, words.ErrEmptyDictionary)
	})
}
