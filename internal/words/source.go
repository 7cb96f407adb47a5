// apps/go-solver/internal/words/source.go
//
// One-time loading of the dictionary and answer list.
//
// A Source is created once per process and handed to every strategy that
// shares the dictionary. The first call to Dictionary or Answers loads the
// data; concurrent first callers block on the same sync.Once and all observe
// the same *Dictionary (or the same error).
//
// Lookup order (mirrors the server's word list init):
//   1. explicit paths given to NewSource
//   2. WORDS_DICTIONARY_FILE / WORDS_ANSWERS_FILE
//   3. embedded defaults from the assets package

package words

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/assets"
)

// Source lazily loads and caches a Dictionary and its answer list.
type Source struct {
	dictPath    string
	answersPath string

	dictOnce sync.Once
	dict     *Dictionary
	dictErr  error

	answersOnce sync.Once
	answers     []Word
	answersErr  error
}

// NewSource returns a Source reading from the given paths. Empty paths fall
// back to the environment, then to the embedded lists.
func NewSource(dictPath, answersPath string) *Source {
	if dictPath == "" {
		dictPath = os.Getenv("WORDS_DICTIONARY_FILE")
	}
	if answersPath == "" {
		answersPath = os.Getenv("WORDS_ANSWERS_FILE")
	}
	return &Source{dictPath: dictPath, answersPath: answersPath}
}

// Dictionary returns the shared dictionary, loading it on first use.
func (s *Source) Dictionary() (*Dictionary, error) {
	s.dictOnce.Do(func() {
		rc, err := open(s.dictPath, assets.Dictionary)
		if err != nil {
			s.dictErr = err
			return
		}
		defer rc.Close()
		d, err := ParseDictionary(rc)
		if err != nil {
			s.dictErr = fmt.Errorf("dictionary %s: %w", describe(s.dictPath), err)
			return
		}
		s.dict = d
		log.Debug().Int("words", d.Len()).Str("source", describe(s.dictPath)).Msg("dictionary loaded")
	})
	return s.dict, s.dictErr
}

// Answers returns the answer list, loading the dictionary first.
func (s *Source) Answers() ([]Word, error) {
	s.answersOnce.Do(func() {
		d, err := s.Dictionary()
		if err != nil {
			s.answersErr = err
			return
		}
		rc, err := open(s.answersPath, assets.Answers)
		if err != nil {
			s.answersErr = err
			return
		}
		defer rc.Close()
		a, err := ParseAnswers(rc, d)
		if err != nil {
			s.answersErr = fmt.Errorf("answers %s: %w", describe(s.answersPath), err)
			return
		}
		s.answers = a
	})
	return s.answers, s.answersErr
}

// Stats returns counts of loaded words: (answers, dictionary).
// Lists that failed to load count as zero.
func (s *Source) Stats() (answersCount int, dictionaryCount int) {
	if d, err := s.Dictionary(); err == nil {
		dictionaryCount = d.Len()
	}
	if a, err := s.Answers(); err == nil {
		answersCount = len(a)
	}
	return answersCount, dictionaryCount
}

func open(path string, embedded func() (io.ReadCloser, error)) (io.ReadCloser, error) {
	if path == "" {
		return embedded()
	}
	return os.Open(path)
}

func describe(path string) string {
	if path == "" {
		return "(embedded)"
	}
	return path
}
