// ABOUTME: Heuristic matching of external records to known clients
// ABOUTME: Substring strategy over participant emails, names, and marketplace nicks
package match

import (
	"strings"

	"consultorml/models"
)

// Record is the external-event view the matcher needs: who was there
// and what the event was called. Calendar events and Fireflies
// transcripts both satisfy it.
type Record struct {
	Title        string
	Participants []string
}

// Strategy decides which client, if any, a record belongs to. The
// client slice is scanned in the given order and the first match wins;
// callers control tie-break priority through that order.
type Strategy interface {
	Match(record Record, clients []models.Client) *models.Client
}

// SubstringStrategy is the shipped heuristic: plain substring
// containment, not tokenized or fuzzy. Short or generic client names
// can produce false positives; that is accepted behavior, carried
// over from the product this replaces.
type SubstringStrategy struct{}

// NewSubstringStrategy returns the default matcher.
func NewSubstringStrategy() *SubstringStrategy {
	return &SubstringStrategy{}
}

// Match scans clients in order and checks, per client:
//  1. client email against each participant, containment in either
//     direction (a short local-part can match an unrelated address;
//     kept as-is rather than silently tightened),
//  2. client display name inside the title or any participant,
//  3. marketplace nickname inside the title or any participant.
//
// Returns nil when no client matches.
func (s *SubstringStrategy) Match(record Record, clients []models.Client) *models.Client {
	title := strings.ToLower(record.Title)
	participants := make([]string, len(record.Participants))
	for i, p := range record.Participants {
		participants[i] = strings.ToLower(p)
	}

	for i := range clients {
		client := &clients[i]
		name := strings.ToLower(client.Name)
		email := strings.ToLower(client.Email)
		nick := strings.ToLower(client.NickML)

		if email != "" && anyContainsEither(participants, email) {
			return client
		}
		if strings.Contains(title, name) || anyContains(participants, name) {
			return client
		}
		if nick != "" && (strings.Contains(title, nick) || anyContains(participants, nick)) {
			return client
		}
	}
	return nil
}

func anyContains(haystacks []string, needle string) bool {
	for _, h := range haystacks {
		if strings.Contains(h, needle) {
			return true
		}
	}
	return false
}

func anyContainsEither(haystacks []string, needle string) bool {
	for _, h := range haystacks {
		if strings.Contains(h, needle) || strings.Contains(needle, h) {
			return true
		}
	}
	return false
}
