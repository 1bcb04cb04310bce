package classifier

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/jbrukh/bayesian"
	"gopkg.in/yaml.v3"

	"github.com/linkstash/linkstash/internal/logger"
)

//go:embed rules.yaml
var rulesYAML []byte

//go:embed seed.yaml
var seedYAML []byte

// DefaultTag is returned when nothing else matches.
const DefaultTag = "Other"

// Categories is the closed tag set. Predict only ever returns one of these.
var Categories = []string{
	"News", "Shopping", "Research", "Entertainment", "Cloud", "Education", DefaultTag,
}

// Rule maps a tag to the keywords that select it.
type Rule struct {
	Tag      string   `yaml:"tag"`
	Keywords []string `yaml:"keywords"`
}

// SeedExample is one labeled training example for the statistical layer.
type SeedExample struct {
	Text string `yaml:"text"`
	URL  string `yaml:"url"`
	Tag  string `yaml:"tag"`
}

// Classifier assigns exactly one category tag to a piece of text.
//
// Two layers: a lazily trained naive Bayes model over the embedded seed
// examples, and an ordered keyword rule table. The Bayes layer answers
// only when it is confident; the rule table is the deterministic,
// dependency-free authority and always produces an answer.
type Classifier struct {
	log   logger.Logger
	rules []Rule

	trainOnce sync.Once
	bayes     *bayesian.Classifier
	classes   []bayesian.Class
}

// New parses the embedded rule table. The statistical layer is not
// trained until the first Predict call.
func New(log logger.Logger) (*Classifier, error) {
	var rules []Rule
	if err := yaml.Unmarshal(rulesYAML, &rules); err != nil {
		return nil, fmt.Errorf("failed to parse rules yaml: %w", err)
	}
	if len(rules) == 0 {
		return nil, fmt.Errorf("rule table is empty")
	}
	return &Classifier{log: log, rules: rules}, nil
}

// Predict returns one tag from Categories for the given text and url.
// It is deterministic and never fails.
func (c *Classifier) Predict(text, url string) string {
	if tag, ok := c.predictBayes(text, url); ok {
		return tag
	}
	return c.predictRules(text, url)
}

// ─────────────────────────────────────────────────────────────────
// Statistical layer (best-effort)
// ─────────────────────────────────────────────────────────────────

// predictBayes consults the naive Bayes layer. It declines (ok=false)
// when training failed, the input tokenizes to nothing, or the top
// score is not strictly unique.
func (c *Classifier) predictBayes(text, url string) (tag string, ok bool) {
	c.trainOnce.Do(c.train)
	if c.bayes == nil {
		return "", false
	}

	tokens := Tokenize(text + " " + url)
	if len(tokens) == 0 {
		return "", false
	}

	_, idx, strict := c.bayes.LogScores(tokens)
	if !strict || idx < 0 || idx >= len(c.classes) {
		return "", false
	}
	return string(c.classes[idx]), true
}

// train builds the Bayes model from the embedded seed set. Any failure
// leaves c.bayes nil and the layer permanently disabled for this
// Classifier; the rule layer covers for it.
func (c *Classifier) train() {
	defer func() {
		if r := recover(); r != nil {
			c.log.Warn("statistical tag layer disabled",
				logger.String("reason", fmt.Sprint(r)))
			c.bayes = nil
		}
	}()

	var seed []SeedExample
	if err := yaml.Unmarshal(seedYAML, &seed); err != nil {
		c.log.Warn("statistical tag layer disabled, bad seed data", logger.Error(err))
		return
	}
	if len(seed) == 0 {
		c.log.Warn("statistical tag layer disabled, empty seed data")
		return
	}

	classes := make([]bayesian.Class, 0, len(Categories))
	for _, cat := range Categories {
		classes = append(classes, bayesian.Class(cat))
	}

	model := bayesian.NewClassifier(classes...)
	trained := 0
	for _, ex := range seed {
		tokens := Tokenize(ex.Text + " " + ex.URL)
		if len(tokens) == 0 || !isCategory(ex.Tag) {
			continue
		}
		model.Learn(tokens, bayesian.Class(ex.Tag))
		trained++
	}
	if trained == 0 {
		c.log.Warn("statistical tag layer disabled, no usable seed examples")
		return
	}

	c.classes = classes
	c.bayes = model
	c.log.Debug("statistical tag layer trained", logger.Int("examples", trained))
}

// ─────────────────────────────────────────────────────────────────
// Rule layer (authoritative fallback)
// ─────────────────────────────────────────────────────────────────

// predictRules scans the ordered rule table; the first tag with any
// keyword contained in the lowercased text or url wins.
func (c *Classifier) predictRules(text, url string) string {
	textLower := strings.ToLower(text)
	urlLower := strings.ToLower(url)

	for _, rule := range c.rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(textLower, kw) || strings.Contains(urlLower, kw) {
				return rule.Tag
			}
		}
	}
	return DefaultTag
}

func isCategory(tag string) bool {
	for _, cat := range Categories {
		if cat == tag {
			return true
		}
	}
	return false
}
