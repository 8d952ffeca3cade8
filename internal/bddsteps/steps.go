// Package bddsteps wires godog step definitions to the decision
// engine for the end-to-end scenarios of spec §8, run against an
// in-memory catalogue fixture rather than a live SQLite file.
package bddsteps

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/cucumber/godog"

	"github.com/movieakinator/engine/internal/catalogue"
	"github.com/movieakinator/engine/internal/engine"
	"github.com/movieakinator/engine/internal/errs"
	"github.com/movieakinator/engine/internal/tri"
)

// fixtureLookup is a tiny in-memory DetailsLookup for scenarios that
// don't need cast/crew/keyword detail.
type fixtureLookup map[int]*catalogue.Details

func (f fixtureLookup) Details(filmID int) *catalogue.Details {
	if d, ok := f[filmID]; ok {
		return d
	}
	return &catalogue.Details{FilmID: filmID}
}

// GameContext holds the live engine and last-observed step/error
// across a scenario's steps.
type GameContext struct {
	eng        *engine.Engine
	lookup     fixtureLookup
	genres     *catalogue.GenreMap
	lastStep   engine.Step
	lastErr    error
	filmByName map[string]int
}

func newGameContext() *GameContext {
	return &GameContext{lookup: make(fixtureLookup), filmByName: make(map[string]int)}
}

// InitializeGameSteps registers the guessing-game step definitions.
func InitializeGameSteps(ctx *godog.ScenarioContext) {
	gc := newGameContext()

	ctx.Step(`^a catalogue with films:$`, gc.aCatalogueWithFilms)
	ctx.Step(`^the game has started$`, gc.theGameHasStarted)
	ctx.Step(`^I answer "([^"]*)" to "([^"]*)"$`, gc.iAnswerTo)
	ctx.Step(`^the action should be "([^"]*)"$`, gc.theActionShouldBe)
	ctx.Step(`^the proposed film should be "([^"]*)"$`, gc.theProposedFilmShouldBe)
	ctx.Step(`^film "([^"]*)" should no longer be a candidate$`, gc.filmShouldNoLongerBeCandidate)
	ctx.Step(`^I confirm the guess as (true|false)$`, gc.iConfirmTheGuessAs)
	ctx.Step(`^the guess cooldown should be (\d+)$`, gc.theGuessCooldownShouldBe)
	ctx.Step(`^the same film leads for (\d+) consecutive questions$`, gc.theSameFilmLeadsForConsecutiveQuestions)
	ctx.Step(`^the selector is exhausted with (\d+) candidates remaining$`, gc.theSelectorIsExhaustedWithCandidatesRemaining)
	ctx.Step(`^a "NoEligibleQuestion" error should be surfaced$`, gc.aNoEligibleQuestionErrorShouldBeSurfaced)
}

func (gc *GameContext) aCatalogueWithFilms(table *godog.Table) error {
	films := make([]*catalogue.Film, 0, len(table.Rows)-1)
	for i, row := range table.Rows {
		if i == 0 {
			continue // header
		}
		var f catalogue.Film
		f.GenreIDs = make(map[int]struct{})
		for col, cell := range row.Cells {
			header := table.Rows[0].Cells[col].Value
			switch header {
			case "id":
				fmt.Sscanf(cell.Value, "%d", &f.ID)
			case "title":
				f.Title = cell.Value
			case "year":
				fmt.Sscanf(cell.Value, "%d", &f.Year)
			case "popularity":
				fmt.Sscanf(cell.Value, "%f", &f.Popularity)
			}
		}
		films = append(films, &f)
		gc.filmByName[f.Title] = f.ID
	}

	cfg := engine.Config{MaxStrikes: 3, TopStreakQuestions: 10, GuessCooldown: 2, MaxConsecutiveGuesses: 4}
	gc.eng = engine.New(films, gc.lookup, gc.genres, cfg, rand.New(rand.NewSource(42)))
	return nil
}

func (gc *GameContext) theGameHasStarted() error {
	step, err := gc.eng.Start()
	gc.lastStep, gc.lastErr = step, err
	return nil
}

func (gc *GameContext) iAnswerTo(answer, question string) error {
	a, err := tri.ParseAnswer(answer)
	if err != nil {
		return err
	}
	step, aerr := gc.eng.Answer(a)
	gc.lastStep, gc.lastErr = step, aerr
	return nil
}

func (gc *GameContext) theActionShouldBe(action string) error {
	if gc.lastStep.Action != action {
		return fmt.Errorf("action = %q, want %q", gc.lastStep.Action, action)
	}
	return nil
}

func (gc *GameContext) theProposedFilmShouldBe(title string) error {
	id := gc.eng.State().ProposedFilmID
	for _, f := range gc.eng.State().Candidates {
		if f.ID == id && f.Title == title {
			return nil
		}
	}
	return fmt.Errorf("proposed film id %d did not resolve to title %q", id, title)
}

func (gc *GameContext) filmShouldNoLongerBeCandidate(title string) error {
	id, ok := gc.filmByName[title]
	if !ok {
		return fmt.Errorf("unknown fixture film %q", title)
	}
	for _, f := range gc.eng.State().Candidates {
		if f.ID == id {
			return fmt.Errorf("film %q is still a candidate", title)
		}
	}
	return nil
}

func (gc *GameContext) iConfirmTheGuessAs(value string) error {
	step, err := gc.eng.Confirm(value == "true")
	gc.lastStep, gc.lastErr = step, err
	return err
}

func (gc *GameContext) theGuessCooldownShouldBe(n int) error {
	if gc.eng.State().GuessCooldown != n {
		return fmt.Errorf("GuessCooldown = %d, want %d", gc.eng.State().GuessCooldown, n)
	}
	return nil
}

func (gc *GameContext) theSameFilmLeadsForConsecutiveQuestions(n int) error {
	if len(gc.eng.State().Candidates) == 0 {
		return fmt.Errorf("no candidates to hold a streak")
	}
	top := gc.eng.State().Candidates[0].ID
	gc.eng.State().TopStreak = engine.Streak{FilmID: top, Length: n}
	return nil
}

func (gc *GameContext) theSelectorIsExhaustedWithCandidatesRemaining(n int) error {
	if len(gc.eng.State().Candidates) != n {
		return fmt.Errorf("candidate count = %d, want %d", len(gc.eng.State().Candidates), n)
	}
	return nil
}

func (gc *GameContext) aNoEligibleQuestionErrorShouldBeSurfaced() error {
	var target *errs.NoEligibleQuestionError
	if !errors.As(gc.lastErr, &target) {
		return fmt.Errorf("expected a NoEligibleQuestionError, got %v", gc.lastErr)
	}
	return nil
}
