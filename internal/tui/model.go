// Package tui renders the blackjack table as a Bubble Tea program. It
// is strictly a subscriber of the game session's event bus: all rule
// logic stays in internal/game, and this package only translates key
// presses into session calls and snapshots into strings.
package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/guide"
	"github.com/lox/blackjack/internal/i18n"
	"github.com/lox/blackjack/internal/prefs"
	"github.com/lox/blackjack/internal/score"
)

// dealerTickMsg paces the dealer's draw-or-stop decisions.
type dealerTickMsg struct{}

// eventSink collects session events published during a single Update
// call so the model can fold them into display state afterwards.
type eventSink struct {
	events []game.Event
}

func (s *eventSink) OnEvent(event game.Event) {
	s.events = append(s.events, event)
}

func (s *eventSink) drain() []game.Event {
	out := s.events
	s.events = nil
	return out
}

// Model is the Bubble Tea model for interactive play.
type Model struct {
	session *game.Session
	tracker *score.Tracker
	engine  *guide.Engine
	catalog i18n.Catalog
	prefs   *prefs.Manager
	logger  *log.Logger

	sink     *eventSink
	snapshot game.Snapshot
	message  string
	hint     string

	tutorial     prefs.Tutorial
	showTutorial bool

	dealerInterval time.Duration

	keys keyMap
	help help.Model

	width  int
	height int
}

// New creates the table model wired to a session.
func New(session *game.Session, tracker *score.Tracker, mgr *prefs.Manager, catalog i18n.Catalog, dealerInterval time.Duration, logger *log.Logger) *Model {
	hints := mgr.Hints()
	tutorial := mgr.Tutorial()

	m := &Model{
		session:        session,
		tracker:        tracker,
		engine:         guide.NewEngine(catalog, hints),
		catalog:        catalog,
		prefs:          mgr,
		logger:         logger.WithPrefix("tui"),
		sink:           &eventSink{},
		tutorial:       tutorial,
		showTutorial:   guide.ShouldShow(tutorial),
		dealerInterval: dealerInterval,
		keys:           defaultKeyMap(),
		help:           help.New(),
	}
	session.EventBus().Subscribe(m.sink)
	m.snapshot = session.Snapshot()
	m.message = catalog.T("msg.placeYourBet", nil)
	m.hint = m.engine.Hint(m.snapshot)
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case dealerTickMsg:
		done := m.session.DealerStep()
		m.consumeEvents()
		if !done {
			return m, m.dealerTick()
		}
		return m, nil

	case tea.KeyMsg:
		if m.showTutorial {
			return m.updateTutorial(msg)
		}
		return m.updateTable(msg)
	}
	return m, nil
}

func (m *Model) updateTutorial(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	now := time.Now()
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.tutorial = guide.Skip(m.tutorial, now)
		m.showTutorial = false
	case "b":
		m.tutorial = guide.Back(m.tutorial)
	default:
		m.tutorial = guide.Advance(m.tutorial, now)
		m.showTutorial = !m.tutorial.Completed
	}
	m.prefs.SaveTutorial(m.tutorial)
	return m, nil
}

func (m *Model) updateTable(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var startDealer, dealt bool

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Chip10):
		m.session.PlaceBet(10)
	case key.Matches(msg, m.keys.Chip50):
		m.session.PlaceBet(50)
	case key.Matches(msg, m.keys.Chip100):
		m.session.PlaceBet(100)
	case key.Matches(msg, m.keys.Chip500):
		m.session.PlaceBet(500)
	case key.Matches(msg, m.keys.ClearBet):
		m.session.ClearBet()
	case key.Matches(msg, m.keys.Hit):
		m.session.Hit()
		startDealer = true
	case key.Matches(msg, m.keys.Stand):
		m.session.Stand()
		startDealer = true
	case key.Matches(msg, m.keys.Double):
		m.session.DoubleDown()
		startDealer = true
	case key.Matches(msg, m.keys.Split):
		m.session.Split()
	default:
		// Deal and NewHand share enter; dispatch on state.
		switch m.snapshot.State {
		case game.Betting:
			if key.Matches(msg, m.keys.Deal) {
				dealt = true
				m.session.StartHand()
			}
		case game.HandOver:
			if key.Matches(msg, m.keys.NewHand) {
				m.session.ResetForNewHand()
			}
		}
	}

	wasActive := m.snapshot.ActiveHandIndex
	m.consumeEvents()

	switch {
	case startDealer && m.snapshot.State == game.DealerTurn:
		m.message = m.catalog.T("msg.dealerTurn", nil)
		return m, m.dealerTick()
	case dealt && m.snapshot.State == game.PlayerTurn:
		m.message = m.catalog.T("msg.yourTurn", nil)
	case m.snapshot.State == game.PlayerTurn && wasActive == 0 && m.snapshot.ActiveHandIndex == 1:
		m.message = m.catalog.T("msg.secondHand", nil)
	}
	return m, nil
}

func (m *Model) dealerTick() tea.Cmd {
	interval := m.dealerInterval
	if m.prefs.Settings().ReducedMotion {
		interval = 0
	}
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return dealerTickMsg{}
	})
}

// consumeEvents folds published session events into display state.
func (m *Model) consumeEvents() {
	for _, ev := range m.sink.drain() {
		switch ev := ev.(type) {
		case game.SnapshotEvent:
			m.snapshot = ev.Snapshot
		case game.ShuffleEvent:
			m.message = m.catalog.T("msg.shuffling", nil)
		case game.OutcomeEvent:
			m.message = m.outcomeMessage(ev.Resolution)
		case game.BankruptcyEvent:
			m.message = m.catalog.T("msg.bankrupt", i18n.Args{"score": strconv.Itoa(ev.FinalScore)})
		}
	}
	m.hint = m.engine.Hint(m.snapshot)

	if m.snapshot.State == game.Betting && m.message == "" {
		m.message = m.catalog.T("msg.placeYourBet", nil)
	}
}

func (m *Model) outcomeMessage(res game.Resolution) string {
	switch res.Special {
	case game.OutcomeBlackjack:
		return m.catalog.T("msg.blackjackWin", nil)
	case game.OutcomePush:
		return m.catalog.T("msg.push", nil)
	}

	var parts []string
	for i, outcome := range res.Hands {
		args := i18n.Args{"hand": strconv.Itoa(i + 1)}
		switch outcome {
		case game.HandWin:
			parts = append(parts, m.catalog.T("msg.handWin", args))
		case game.HandLose:
			parts = append(parts, m.catalog.T("msg.handLose", args))
		case game.HandPush:
			parts = append(parts, m.catalog.T("msg.handPush", args))
		case game.HandBust:
			parts = append(parts, m.catalog.T("msg.handBust", args))
		}
	}
	return strings.Join(parts, "  ")
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.showTutorial {
		return m.tutorialView()
	}

	var b strings.Builder

	b.WriteString(TitleStyle.Render("BLACKJACK"))
	b.WriteString("\n\n")

	b.WriteString(m.dealerView())
	b.WriteString("\n")
	b.WriteString(m.playerView())
	b.WriteString("\n")

	rec := m.tracker.Record()
	b.WriteString(fmt.Sprintf("%s   Bet: $%d   Match: %d   Best: %d\n",
		BalanceStyle.Render(fmt.Sprintf("Balance: $%d", m.snapshot.Balance)),
		m.snapshot.CurrentBet,
		rec.CurrentScore.MatchCount,
		rec.BestScore))
	b.WriteString("\n")

	if m.message != "" {
		b.WriteString(MessageStyle.Render(m.message))
		b.WriteString("\n")
	}
	if m.hint != "" {
		b.WriteString(HintStyle.Render("💡 " + m.hint))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m *Model) dealerView() string {
	label := "?"
	if !m.snapshot.DealerHidden {
		label = m.snapshot.DealerHand.Label()
	}
	header := m.catalog.T("score.dealer", i18n.Args{"score": label})
	cards := renderCards(m.snapshot.DealerHand, m.snapshot.DealerHidden)
	return HandStyle.Render(header + "\n" + cards)
}

func (m *Model) playerView() string {
	if len(m.snapshot.PlayerHands) == 0 {
		return HandStyle.Render(m.catalog.T("score.player", i18n.Args{"score": "0"}) + "\n")
	}

	var views []string
	for i, hand := range m.snapshot.PlayerHands {
		header := m.catalog.T("score.player", i18n.Args{"score": hand.Label()})
		if len(m.snapshot.PlayerHands) > 1 {
			header = fmt.Sprintf("Hand %d: %s", i+1, hand.Label())
		}
		view := header + "\n" + renderCards(hand, false)
		style := HandStyle
		if m.snapshot.State == game.PlayerTurn && i == m.snapshot.ActiveHandIndex && len(m.snapshot.PlayerHands) > 1 {
			style = ActiveHandStyle
		}
		views = append(views, style.Render(view))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, views...)
}

func (m *Model) tutorialView() string {
	steps := guide.Steps()
	idx := m.tutorial.CurrentStep
	if idx >= len(steps) {
		idx = len(steps) - 1
	}
	step := steps[idx]

	content := fmt.Sprintf("%s\n\n%s\n\n%s",
		MessageStyle.Render(m.catalog.T(step.TitleKey, nil)),
		m.catalog.T(step.DescKey, nil),
		FaintStyle.Render(fmt.Sprintf("step %d/%d · any key: next · b: back · esc: skip", idx+1, len(steps))))
	return TutorialStyle.Render(content)
}

// renderCards renders a hand, masking the second card while the dealer's
// hole card is face down.
func renderCards(hand deck.Hand, hideSecond bool) string {
	if len(hand) == 0 {
		return FaintStyle.Render("--")
	}
	var parts []string
	for i, card := range hand {
		if hideSecond && i == 1 {
			parts = append(parts, HiddenCardStyle.Render("[??]"))
			continue
		}
		style := BlackCardStyle
		if card.IsRed() {
			style = RedCardStyle
		}
		parts = append(parts, style.Render("["+card.String()+"]"))
	}
	return strings.Join(parts, " ")
}
