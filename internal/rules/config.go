package rules

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed schema/session.json
var sessionSchemaJSON []byte

const sessionSchemaURL = "https://blackjackforbots.local/session.json"

// Session is a set of tables and rule sets. Analysis runs every
// table against every rule set.
type Session struct {
	Tables []TableConfig
	Rules  []CasinoRules
}

// Combinations returns the validated cross product of tables and rule sets,
// tables outermost.
func (s *Session) Combinations() ([]TableRules, error) {
	tables := s.Tables
	if len(tables) == 0 {
		tables = []TableConfig{DefaultTable()}
	}
	casinos := s.Rules
	if len(casinos) == 0 {
		casinos = []CasinoRules{DefaultCasinoRules()}
	}

	out := make([]TableRules, 0, len(tables)*len(casinos))
	for _, t := range tables {
		for _, c := range casinos {
			tr, err := New(t, c)
			if err != nil {
				return nil, err
			}
			out = append(out, tr)
		}
	}
	return out, nil
}

// tableFields is the on-disk form of a table. Absent fields fall back to
// DefaultTable field by field.
type tableFields struct {
	Name         *string `json:"name" yaml:"name"`
	InitialMoney *int    `json:"initialMoney" yaml:"initialMoney"`
	MinBet       *int    `json:"minBet" yaml:"minBet"`
	MaxBet       *int    `json:"maxBet" yaml:"maxBet"`
	NumDecks     *int    `json:"numDecks" yaml:"numDecks"`
	NumRounds    *int    `json:"numRounds" yaml:"numRounds"`
	DeckNumber   *int64  `json:"deckNumber" yaml:"deckNumber"`
}

func (f tableFields) resolve(index int) TableConfig {
	t := DefaultTable()
	t.Name = fmt.Sprintf("table-%d", index)
	setIf(&t.Name, f.Name)
	setIf(&t.InitialMoney, f.InitialMoney)
	setIf(&t.MinBet, f.MinBet)
	setIf(&t.MaxBet, f.MaxBet)
	setIf(&t.NumDecks, f.NumDecks)
	setIf(&t.NumRounds, f.NumRounds)
	setIf(&t.DeckNumber, f.DeckNumber)
	return t
}

// rulesFields is the on-disk form of a casino rule set. Absent fields fall
// back to DefaultCasinoRules.
type rulesFields struct {
	Description                *string  `json:"description" yaml:"description"`
	BlackjackPayoutRatio       *float64 `json:"blackjackPayoutRatio" yaml:"blackjackPayoutRatio"`
	PushPayoutRatio            *float64 `json:"pushPayoutRatio" yaml:"pushPayoutRatio"`
	DealerHitsSoft17           *bool    `json:"dealerHitsSoft17" yaml:"dealerHitsSoft17"`
	DeckPenetrationPercent     *int     `json:"deckPenetrationPercent" yaml:"deckPenetrationPercent"`
	UseRealRulesWhenOutOfCards *bool    `json:"useRealRulesWhenOutOfCards" yaml:"useRealRulesWhenOutOfCards"`
	AllowResplit               *bool    `json:"allowResplit" yaml:"allowResplit"`
	AllowDoubleAfterSplit      *bool    `json:"allowDoubleAfterSplit" yaml:"allowDoubleAfterSplit"`
}

func (f rulesFields) resolve() CasinoRules {
	c := DefaultCasinoRules()
	setIf(&c.Description, f.Description)
	setIf(&c.BlackjackPayoutRatio, f.BlackjackPayoutRatio)
	setIf(&c.PushPayoutRatio, f.PushPayoutRatio)
	setIf(&c.DealerHitsSoft17, f.DealerHitsSoft17)
	setIf(&c.DeckPenetrationPercent, f.DeckPenetrationPercent)
	setIf(&c.UseRealRulesWhenOutOfCards, f.UseRealRulesWhenOutOfCards)
	setIf(&c.AllowResplit, f.AllowResplit)
	setIf(&c.AllowDoubleAfterSplit, f.AllowDoubleAfterSplit)
	return c
}

type hclTable struct {
	Name         string `hcl:"name,label"`
	InitialMoney *int   `hcl:"initial_money,optional"`
	MinBet       *int   `hcl:"min_bet,optional"`
	MaxBet       *int   `hcl:"max_bet,optional"`
	NumDecks     *int   `hcl:"num_decks,optional"`
	NumRounds    *int   `hcl:"num_rounds,optional"`
	DeckNumber   *int64 `hcl:"deck_number,optional"`
}

// hclRules carries its description as the block label.
type hclRules struct {
	Label                      string   `hcl:"name,label"`
	Description                *string  `hcl:"description,optional"`
	BlackjackPayoutRatio       *float64 `hcl:"blackjack_payout_ratio,optional"`
	PushPayoutRatio            *float64 `hcl:"push_payout_ratio,optional"`
	DealerHitsSoft17           *bool    `hcl:"dealer_hits_soft_17,optional"`
	DeckPenetrationPercent     *int     `hcl:"deck_penetration_percent,optional"`
	UseRealRulesWhenOutOfCards *bool    `hcl:"use_real_rules_when_out_of_cards,optional"`
	AllowResplit               *bool    `hcl:"allow_resplit,optional"`
	AllowDoubleAfterSplit      *bool    `hcl:"allow_double_after_split,optional"`
}

type hclSession struct {
	Tables []hclTable `hcl:"table,block"`
	Rules  []hclRules `hcl:"rules,block"`
}

type fileSession struct {
	Tables []tableFields `json:"tables" yaml:"tables"`
	Rules  []rulesFields `json:"rules" yaml:"rules"`
}

func (f fileSession) resolve() *Session {
	s := &Session{}
	for i, t := range f.Tables {
		s.Tables = append(s.Tables, t.resolve(i))
	}
	for _, r := range f.Rules {
		s.Rules = append(s.Rules, r.resolve())
	}
	return s
}

// Load reads a session file, choosing the format from its extension:
// .hcl, .json, .yaml or .yml.
func Load(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read session file: %w", err)
	}

	var session *Session
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".hcl":
		session, err = ParseHCL(data, path)
	case ".json":
		session, err = ParseJSON(data)
	case ".yaml", ".yml":
		session, err = ParseYAML(data)
	default:
		return nil, fmt.Errorf("%w: unsupported session file extension %q", ErrInvalidConfig, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return session, nil
}

// ParseHCL decodes an HCL session made of table and rules blocks.
func ParseHCL(data []byte, filename string) (*Session, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to parse HCL: %s", ErrInvalidConfig, diags.Error())
	}

	var raw hclSession
	diags = gohcl.DecodeBody(file.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to decode HCL: %s", ErrInvalidConfig, diags.Error())
	}

	var fs fileSession
	for _, t := range raw.Tables {
		name := t.Name
		fs.Tables = append(fs.Tables, tableFields{
			Name:         &name,
			InitialMoney: t.InitialMoney,
			MinBet:       t.MinBet,
			MaxBet:       t.MaxBet,
			NumDecks:     t.NumDecks,
			NumRounds:    t.NumRounds,
			DeckNumber:   t.DeckNumber,
		})
	}
	for _, r := range raw.Rules {
		desc := r.Description
		if desc == nil {
			label := r.Label
			desc = &label
		}
		fs.Rules = append(fs.Rules, rulesFields{
			Description:                desc,
			BlackjackPayoutRatio:       r.BlackjackPayoutRatio,
			PushPayoutRatio:            r.PushPayoutRatio,
			DealerHitsSoft17:           r.DealerHitsSoft17,
			DeckPenetrationPercent:     r.DeckPenetrationPercent,
			UseRealRulesWhenOutOfCards: r.UseRealRulesWhenOutOfCards,
			AllowResplit:               r.AllowResplit,
			AllowDoubleAfterSplit:      r.AllowDoubleAfterSplit,
		})
	}
	return fs.resolve(), nil
}

// ParseJSON validates a JSON session against the embedded schema and decodes it.
func ParseJSON(data []byte) (*Session, error) {
	schema, err := sessionSchema()
	if err != nil {
		return nil, err
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: failed to parse JSON: %v", ErrInvalidConfig, err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	var fs fileSession
	if err := json.Unmarshal(data, &fs); err != nil {
		return nil, fmt.Errorf("%w: failed to decode JSON: %v", ErrInvalidConfig, err)
	}
	return fs.resolve(), nil
}

// ParseYAML decodes a YAML session. Unknown keys are rejected.
func ParseYAML(data []byte) (*Session, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var fs fileSession
	if err := dec.Decode(&fs); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: failed to decode YAML: %v", ErrInvalidConfig, err)
	}
	return fs.resolve(), nil
}

func sessionSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(sessionSchemaURL, bytes.NewReader(sessionSchemaJSON)); err != nil {
		return nil, fmt.Errorf("add session schema: %w", err)
	}
	schema, err := compiler.Compile(sessionSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile session schema: %w", err)
	}
	return schema, nil
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
