package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/movieakinator/engine/internal/catalogue"
	"github.com/movieakinator/engine/internal/config"
	"github.com/movieakinator/engine/internal/engine"
	"github.com/movieakinator/engine/internal/logging"
	"github.com/movieakinator/engine/internal/session"
	"github.com/movieakinator/engine/internal/tri"
)

const (
	appName = "akinator"
	version = "0.1.0"
)

// optionsUI is the five-value answer alphabet as presented to a player,
// following the original engine's OPTIONS_UI labels (yes/no/unknown/
// probably/probably not) rather than a free-text field.
var optionsUI = []string{"yes", "no", "unknown", "probably_yes", "probably_no"}

func main() {
	var (
		showVersion = flag.Bool("version", false, "Show version information")
		showHelp    = flag.Bool("help", false, "Show help information")
		configPath  = flag.String("config", "", "Path to an optional YAML config file overlay")
		scriptPath  = flag.String("script", "", "Path to a JSON script of answers for scripted replay")
		seedFile    = flag.String("seed-file", "", "Alias for -script")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("%s version %s\n", appName, version)
		os.Exit(0)
	}
	if *showHelp {
		printHelp()
		os.Exit(0)
	}
	if *scriptPath == "" {
		*scriptPath = *seedFile
	}

	if err := run(*configPath, *scriptPath); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Printf("Movie Akinator - a yes/no guessing game over a film catalogue\n\n")
	fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
	fmt.Printf("Options:\n")
	flag.PrintDefaults()
	fmt.Printf("\nAnswers: yes, no, unknown, probably_yes, probably_no (short forms: y, n, ?, py, pn)\n")
}

func run(configPath, scriptPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logging.New(cfg.Server.LogLevel)

	store, err := catalogue.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("open catalogue: %w", err)
	}
	defer store.Close()

	genres, err := store.LoadGenres()
	if err != nil {
		return fmt.Errorf("load genres: %w", err)
	}
	films, err := store.DiscoverFilms(cfg.Database.RowLimit)
	if err != nil {
		return fmt.Errorf("discover films: %w", err)
	}
	if len(films) == 0 {
		fmt.Println("Sorry, I couldn't find any films to play with.")
		return nil
	}
	catalogue.SortFilmsByPopularity(films)
	log.WithField("candidates", len(films)).Info("catalogue loaded")

	var source answerSource
	if scriptPath != "" {
		s, err := loadScript(scriptPath)
		if err != nil {
			return fmt.Errorf("load script: %w", err)
		}
		source = newScriptedSource(s)
	} else {
		source = newStdinSource()
	}

	registry := session.NewRegistry(cfg.Server.SessionTTL)
	econfig := engine.Config{
		MaxStrikes:            cfg.Engine.MaxStrikes,
		TopStreakQuestions:    cfg.Engine.TopStreakQuestions,
		GuessCooldown:         cfg.Engine.GuessCooldown,
		MaxConsecutiveGuesses: cfg.Engine.MaxConsecutiveGuesses,
	}
	sess := registry.Create(films, store, genres, econfig)
	log.WithField("session_id", sess.ID).Debug("session created")

	return playGame(sess, source)
}

// playGame drives turns until the session reaches a terminal phase,
// reading each answer/confirmation from source.
func playGame(sess *session.Session, source answerSource) error {
	step, err := sess.Start()
	if err != nil {
		return fmt.Errorf("start game: %w", err)
	}

	for {
		switch step.Action {
		case "guess":
			fmt.Printf("%s (y/n) ", step.Text)
			correct, ok := readBool(source)
			if !ok {
				return fmt.Errorf("no more scripted input to confirm the guess")
			}
			step, err = sess.Confirm(correct)
			if err != nil {
				return fmt.Errorf("confirm guess: %w", err)
			}
		case "question":
			fmt.Printf("Q%d: %s [%s] ", step.QuestionNumber, step.Text, strings.Join(optionsUI, "/"))
			token, ok := source.next()
			if !ok {
				return fmt.Errorf("no more scripted input to answer question %d", step.QuestionNumber)
			}
			answer, err := tri.ParseAnswer(token)
			if err != nil {
				fmt.Printf("(%v, try again) ", err)
				continue
			}
			step, err = sess.Answer(answer)
			if err != nil {
				return fmt.Errorf("answer question: %w", err)
			}
		default:
			printTerminal(step)
			return nil
		}
	}
}

func printTerminal(step engine.Step) {
	switch step.Phase {
	case engine.PhaseTerminalSuccess:
		fmt.Println("Great, I guessed it!")
	default:
		fmt.Println("Sorry, I failed to guess your film.")
	}
}

func readBool(source answerSource) (bool, bool) {
	token, ok := source.next()
	if !ok {
		return false, false
	}
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "y", "yes", "true":
		return true, true
	default:
		return false, true
	}
}

// stdinSource reads answers interactively from the terminal, the way
// the teacher's JSON-RPC server loop reads requests line by line.
type stdinSource struct {
	scanner *bufio.Scanner
}

func newStdinSource() *stdinSource {
	return &stdinSource{scanner: bufio.NewScanner(os.Stdin)}
}

func (s *stdinSource) next() (string, bool) {
	if !s.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.scanner.Text()), true
}
