package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/aliskhannn/arabizi-coach/internal/arabizi"
	"github.com/aliskhannn/arabizi-coach/internal/domain/entities"
	"github.com/aliskhannn/arabizi-coach/internal/infra/postgres"
	"github.com/aliskhannn/arabizi-coach/internal/infra/postgres/repository"
	"github.com/aliskhannn/arabizi-coach/internal/matcher"
	lexrepo "github.com/aliskhannn/arabizi-coach/internal/repository"
)

const defaultSuggestions = 3

var (
	ErrNoActivePrompt = errors.New("no active practice prompt")
	ErrEmptyAnswer    = errors.New("empty answer")
	ErrNoWords        = errors.New("no words to practice")
)

// AnswerResult is what the learner gets back after answering a prompt.
type AnswerResult struct {
	Prompt      entities.PracticePrompt
	Attempt     *entities.PracticeAttempt
	Progress    *entities.WordProgress
	Suggestions []matcher.Suggestion   // filled only when nothing matched
	TypedEntry  *entities.LexiconEntry // another word whose Arabic script was sent on a miss
	Finished    bool                   // prompt was answered correctly and cleared
}

// PracticeOption configures a [PracticeService].
type PracticeOption func(*PracticeService)

// WithMasteryThreshold sets how many correct answers master a word.
func WithMasteryThreshold(n int) PracticeOption {
	return func(s *PracticeService) {
		if n > 0 {
			s.mastery = n
		}
	}
}

// WithSuggestions sets how many "did you mean" entries a miss returns.
func WithSuggestions(n int) PracticeOption {
	return func(s *PracticeService) {
		if n >= 0 {
			s.suggestions = n
		}
	}
}

// PracticeService runs the ask-answer-grade loop of pronunciation practice.
type PracticeService struct {
	tr       Transactor
	lexicon  LexiconRepository
	matcher  Matcher
	prompts  PromptStorage
	progress ProgressRepository
	settings PromptModeProvider

	mastery     int
	suggestions int
}

func NewPracticeService(
	tr Transactor,
	lexicon LexiconRepository,
	m Matcher,
	prompts PromptStorage,
	progress ProgressRepository,
	settings PromptModeProvider,
	opts ...PracticeOption,
) *PracticeService {
	s := &PracticeService{
		tr:          tr,
		lexicon:     lexicon,
		matcher:     m,
		prompts:     prompts,
		progress:    progress,
		settings:    settings,
		mastery:     entities.DefaultMasteryThreshold,
		suggestions: defaultSuggestions,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// NextPrompt picks the next word for the user and makes it the pending prompt.
// Words the user has not mastered yet are preferred; once everything is
// mastered any word may come up again.
func (s *PracticeService) NextPrompt(ctx context.Context, userID int64) (*entities.PracticePrompt, error) {
	lex := s.lexicon.Lexicon()
	if len(lex) == 0 {
		return nil, ErrNoWords
	}

	mastered, err := s.progress.MasteredKeys(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get mastered words: %w", err)
	}

	settings, err := s.settings.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}

	mode := entities.PromptModeEnglish
	if settings.PromptMode.IsValid() {
		mode = settings.PromptMode
	}

	var previous *entities.EntryKey
	if p, ok := s.prompts.Get(userID); ok {
		k := p.Entry.Key()
		previous = &k
	}

	entry := pickEntry(lex, mastered, previous)
	prompt := entities.NewPracticePrompt(userID, entry, mode)
	s.prompts.Store(userID, *prompt)

	return prompt, nil
}

// pickEntry chooses a random entry, skipping mastered ones and the previous
// prompt whenever another candidate exists.
func pickEntry(lex entities.Lexicon, mastered []entities.EntryKey, previous *entities.EntryKey) entities.LexiconEntry {
	skip := make(map[entities.EntryKey]struct{}, len(mastered))
	for _, k := range mastered {
		skip[k] = struct{}{}
	}

	candidates := make([]entities.LexiconEntry, 0, len(lex))
	for _, e := range lex {
		if _, ok := skip[e.Key()]; !ok {
			candidates = append(candidates, e)
		}
	}
	if len(candidates) == 0 {
		candidates = lex
	}

	if previous != nil && len(candidates) > 1 {
		filtered := make([]entities.LexiconEntry, 0, len(candidates))
		for _, e := range candidates {
			if e.Key() != *previous {
				filtered = append(filtered, e)
			}
		}
		if len(filtered) > 0 {
			candidates = filtered
		}
	}

	return candidates[rand.Intn(len(candidates))]
}

// CurrentPrompt returns the pending prompt of the user.
func (s *PracticeService) CurrentPrompt(userID int64) (*entities.PracticePrompt, error) {
	p, ok := s.prompts.Get(userID)
	if !ok {
		return nil, ErrNoActivePrompt
	}
	return &p, nil
}

// SubmitAnswer grades text against the pending prompt, stores the attempt and
// the word progress in one transaction and clears the prompt when the answer
// is correct.
func (s *PracticeService) SubmitAnswer(ctx context.Context, userID int64, text string) (*AnswerResult, error) {
	prompt, ok := s.prompts.Get(userID)
	if !ok {
		return nil, ErrNoActivePrompt
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyAnswer
	}

	lex := s.lexicon.Lexicon()
	verdict := s.matcher.Check(text, prompt.Entry, lex)
	attempt := entities.NewPracticeAttempt(userID, prompt.Entry, text, verdict)

	var typed *entities.LexiconEntry
	if verdict.MatchType == entities.MatchNone && arabizi.ContainsArabic(text) {
		e, err := s.lexicon.FindByArabic(ctx, text)
		switch {
		case err == nil:
			if !e.SameItem(prompt.Entry) {
				typed = e
			}
		case !errors.Is(err, lexrepo.ErrEntryNotFound):
			return nil, fmt.Errorf("find typed word: %w", err)
		}
	}

	var progress *entities.WordProgress
	err := s.tr.WithinTx(ctx, func(ctx context.Context, tx postgres.DBTX) error {
		id, err := repository.NewAttemptRepository(tx).Save(ctx, attempt)
		if err != nil {
			return err
		}
		attempt.ID = id

		progressRepo := repository.NewProgressRepository(tx)
		progress, err = progressRepo.Get(ctx, userID, attempt.Expected)
		if err != nil {
			if !errors.Is(err, repository.ErrProgressNotFound) {
				return err
			}
			progress = entities.NewWordProgress(userID, attempt.Expected)
		}

		progress.Record(verdict, s.mastery, time.Now())

		return progressRepo.Upsert(ctx, progress)
	})
	if err != nil {
		return nil, fmt.Errorf("record answer: %w", err)
	}

	prompt.Attempts = s.prompts.IncrementAttempts(userID)

	result := &AnswerResult{
		Prompt:     prompt,
		Attempt:    attempt,
		Progress:   progress,
		TypedEntry: typed,
	}

	if verdict.IsCorrect {
		s.prompts.Delete(userID)
		result.Finished = true
	}

	if verdict.MatchType == entities.MatchNone && s.suggestions > 0 {
		result.Suggestions = matcher.Suggest(text, lex, s.suggestions)
	}

	return result, nil
}

// Skip gives up on the pending prompt and returns it so the answer can be
// revealed.
func (s *PracticeService) Skip(userID int64) (*entities.PracticePrompt, error) {
	p, ok := s.prompts.Get(userID)
	if !ok {
		return nil, ErrNoActivePrompt
	}
	s.prompts.Delete(userID)
	return &p, nil
}
