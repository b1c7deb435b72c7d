// Package classify provides deterministic keyword-based category
// classification for spoken expense text. No ML, no probabilities: every
// classification is a substring table lookup and fully explainable.
package classify

import (
	"strings"

	"github.com/jmhartley/utter/internal/model"
)

// rule pairs a category with the keywords that select it.
type rule struct {
	category model.Category
	keywords []string
}

// Classifier maps free text onto the closed category set.
type Classifier struct {
	rules []rule
}

// NewClassifier creates a classifier with the default rule table.
func NewClassifier() *Classifier {
	return &Classifier{rules: defaultRules()}
}

// Classify returns the category of the first rule with any keyword contained
// in the lowercased text, or CategoryOther when nothing matches. Rule order
// resolves overlaps; the classifier always terminates with exactly one
// category.
func (c *Classifier) Classify(text string) model.Category {
	lowered := strings.ToLower(text)

	for _, r := range c.rules {
		for _, keyword := range r.keywords {
			if strings.Contains(lowered, keyword) {
				return r.category
			}
		}
	}

	return model.CategoryOther
}
