package words

import (
	"fmt"
	"os"

	"github.com/robalobadob/wordle/assets"
)

// Source names the word list files to load. Empty paths fall back to the
// embedded defaults.
type Source struct {
	AnswersFile string
	AllowedFile string
}

// Load reads the word lists once and returns an immutable Dictionary.
//
//  1. If both files are set, answers come from the first and allowed
//     guesses from the second.
//  2. If only AllowedFile is set, it is used for both lists.
//  3. If only AnswersFile is set, the embedded allowed list fills in guesses.
//  4. Otherwise the embedded lists in package assets are used.
//
// An empty answers list is reported as ErrEmptyDictionary.
func Load(src Source, opts ...Option) (*Dictionary, error) {
	var ansList, allowList []string
	var err error

	switch {
	case src.AnswersFile != "" && src.AllowedFile != "":
		if ansList, err = readWordFile(src.AnswersFile); err != nil {
			return nil, err
		}
		if allowList, err = readWordFile(src.AllowedFile); err != nil {
			return nil, err
		}

	case src.AllowedFile != "":
		if allowList, err = readWordFile(src.AllowedFile); err != nil {
			return nil, err
		}
		ansList = allowList

	case src.AnswersFile != "":
		if ansList, err = readWordFile(src.AnswersFile); err != nil {
			return nil, err
		}
		if allowList, err = assets.AllowedList(); err != nil {
			return nil, fmt.Errorf("embedded allowed list: %w", err)
		}

	default:
		if ansList, err = assets.AnswersList(); err != nil {
			return nil, fmt.Errorf("embedded answers list: %w", err)
		}
		if allowList, err = assets.AllowedList(); err != nil {
			return nil, fmt.Errorf("embedded allowed list: %w", err)
		}
	}

	d := New(ansList, allowList, opts...)
	if len(d.answers) == 0 {
		return nil, ErrEmptyDictionary
	}
	return d, nil
}

// readWordFile loads one word per line from a file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	lines, err := assets.ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return lines, nil
}
