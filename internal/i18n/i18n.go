// Package i18n is the localization seam: a key-to-string catalog with
// named placeholders. Only the English catalog ships here; alternative
// catalogs plug in without touching callers.
package i18n

import "strings"

// Args holds named placeholder values for a message.
type Args map[string]string

// Catalog maps message keys to template strings with {name}
// placeholders.
type Catalog map[string]string

// T looks up key and substitutes placeholders. Unknown keys return the
// key itself so missing translations are visible rather than silent.
func (c Catalog) T(key string, args Args) string {
	msg, ok := c[key]
	if !ok {
		return key
	}
	for name, value := range args {
		msg = strings.ReplaceAll(msg, "{"+name+"}", value)
	}
	return msg
}

// English is the default catalog.
var English = Catalog{
	"msg.placeYourBet": "Place Your Bet",
	"msg.yourTurn":     "Your Turn",
	"msg.shuffling":    "Shuffling new deck...",
	"msg.secondHand":   "Second Hand's Turn",
	"msg.dealerTurn":   "Dealer's Turn",
	"msg.blackjackWin": "Blackjack! You win!",
	"msg.push":         "Push!",
	"msg.handBusts":    "Hand {hand} Busts!",
	"msg.handWin":      "Hand {hand}: You win!",
	"msg.handLose":     "Hand {hand}: Dealer wins.",
	"msg.handPush":     "Hand {hand}: Push.",
	"msg.handBust":     "Hand {hand}: Bust! You lose.",
	"msg.bankrupt":     "Bankrupt! You survived {score} matches.",

	"score.dealer": "Dealer: {score}",
	"score.player": "Player: {score}",
	"score.hand12": "Hand 1: {score1} / Hand 2: {score2}",

	"hint.bet.select":                 "Pick a chip to place your bet.",
	"hint.bet.ready":                  "Bet placed. Deal when you're ready.",
	"hint.player.stand":               "20 or more: stand and let the dealer take the risk.",
	"hint.player.stand.expert":        "Stand. Drawing to 20+ is a losing play.",
	"hint.player.double":              "11 is the best doubling hand: one card, double the win.",
	"hint.player.double.expert":       "Double down. 11 vs any upcard maximizes EV.",
	"hint.player.bust":                "Careful, another card could bust you.",
	"hint.player.bust.expert":         "High bust risk above 16. Hit only against a strong upcard.",
	"hint.player.dealerStrong":        "The dealer shows a strong card. Consider hitting even on a risky total.",
	"hint.player.dealerStrong.expert": "Dealer strong: hit stiff hands, their made hands beat your {value}.",
	"hint.player.dealerWeak":          "The dealer shows a weak card. Standing lets them bust first.",
	"hint.player.dealerWeak.expert":   "Dealer weak (2-6): stand on stiffs, make them draw.",
	"hint.player.hit":                 "10 or less can't bust. Take a card.",
	"hint.player.hit.expert":          "Free hit below 11. Always draw.",
	"hint.dealer.wait":                "Dealer draws to 17 (hits soft 17). Upcard: {up}",
	"hint.handOver":                   "Hand over. Start a new hand when ready.",

	"tutorial.welcome.title": "Welcome to Blackjack",
	"tutorial.welcome.desc":  "A quick tour of the table: dealer, your hands, bet, actions, and balance.",
	"tutorial.betting.title": "Betting",
	"tutorial.betting.desc":  "Choose your bet with the chips, then Deal to start the hand.",
	"tutorial.dealing.title": "The Deal",
	"tutorial.dealing.desc":  "You and the dealer each get two cards. Get closer to 21 than the dealer.",
	"tutorial.actions.title": "Actions",
	"tutorial.actions.desc":  "Hit, Stand, Double Down, or Split when your cards allow it.",
	"tutorial.outcome.title": "Winning",
	"tutorial.outcome.desc":  "Closest to 21 wins. Over 21 busts. The dealer draws to 17 and hits soft 17.",
}
