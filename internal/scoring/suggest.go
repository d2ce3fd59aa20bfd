package scoring

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/resume-scorer/internal/skills"
	"github.com/jonathan/resume-scorer/internal/types"
)

const maxTopActions = 5

// bulletVerbs rotate through suggested bullet templates so a batch of
// suggestions does not read as copies of one sentence.
var bulletVerbs = []string{"Built", "Delivered", "Led", "Implemented", "Designed"}

// Suggest turns missing keywords and failed gates into edit suggestions.
// Suggestions never claim experience the candidate has not stated: every
// template is phrased as "consider adding ... if you have it".
func Suggest(missing []string, gates []types.Gate, job *types.ParsedJobDescription) types.Suggestions {
	suggestions := types.Suggestions{
		Bullets:    []string{},
		TopActions: []string{},
	}

	ranked := rankMissing(missing, gates, job)

	for i, item := range ranked {
		if len(suggestions.TopActions) < maxTopActions {
			suggestions.TopActions = append(suggestions.TopActions,
				fmt.Sprintf("Consider adding %q to your skills or experience section if you have it", item))
		}
		verb := bulletVerbs[i%len(bulletVerbs)]
		suggestions.Bullets = append(suggestions.Bullets,
			fmt.Sprintf("%s [project or system] using %s, [add a measurable outcome]", verb, item))
	}

	for _, gate := range gates {
		if gate.Passed {
			continue
		}
		if n := requiredYears(gate.Rule); n > 0 {
			suggestions.TopActions = appendCapped(suggestions.TopActions,
				fmt.Sprintf("Make your total experience explicit: the role asks for %d+ years, so state dates on every position", n))
		}
	}

	// A failed gate without a years figure means a named tool is absent;
	// the missing-keyword actions above already cover it.

	if len(suggestions.TopActions) == 0 && len(missing) == 0 && job != nil {
		suggestions.TopActions = append(suggestions.TopActions,
			"Quantify your strongest achievements with numbers the screening reader can verify")
	}

	return suggestions
}

// rankMissing orders missing items: terms that appear in a failed hard
// requirement come first, then by how often the term occurs in the job
// description text.
func rankMissing(missing []string, gates []types.Gate, job *types.ParsedJobDescription) []string {
	failedRules := make([]string, 0, len(gates))
	for _, g := range gates {
		if !g.Passed {
			failedRules = append(failedRules, strings.ToLower(g.Rule))
		}
	}

	jdText := ""
	if job != nil {
		jdText = strings.ToLower(job.Text)
	}

	type rankedItem struct {
		item      string
		inGate    bool
		frequency int
	}
	items := make([]rankedItem, 0, len(missing))
	for _, m := range missing {
		lower := strings.ToLower(skills.NormalizeSkillName(m))
		ri := rankedItem{item: m, frequency: strings.Count(jdText, lower)}
		for _, rule := range failedRules {
			if strings.Contains(rule, lower) {
				ri.inGate = true
				break
			}
		}
		items = append(items, ri)
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].inGate != items[j].inGate {
			return items[i].inGate
		}
		return items[i].frequency > items[j].frequency
	})

	out := make([]string, len(items))
	for i, ri := range items {
		out[i] = ri.item
	}
	return out
}

func appendCapped(actions []string, action string) []string {
	if len(actions) >= maxTopActions {
		return actions
	}
	return append(actions, action)
}
