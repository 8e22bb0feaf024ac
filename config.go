package prthrottler

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const envFile = ".env"

// ConfigError reports malformed or missing required configuration. It always
// fails the run before any decision logic.
type ConfigError struct {
	msg string
}

func (e *ConfigError) Error() string { return e.msg }

func configErrorf(format string, args ...interface{}) error {
	return &ConfigError{msg: fmt.Sprintf(format, args...)}
}

// TeamSlug identifies a GitHub team as org/team.
type TeamSlug struct {
	Org  string
	Team string
}

func (s TeamSlug) String() string { return s.Org + "/" + s.Team }

// Config carries everything one enforcement run needs. It is loaded once and
// read-only afterwards.
type Config struct {
	Policy               PolicyTable
	CountDrafts          bool
	SkipOnFailure        bool
	RevertToDraftOnReady bool
	ExcludeUsers         map[string]struct{}
	ExcludeTeams         []TeamSlug
	CloseComment         string
	BackToDraftComment   string
	LabelWhenClosed      string

	Token      string
	Repository string
	EventPath  string
	OutputPath string
}

// NewConfig loads configuration from the environment. Action inputs arrive
// as INPUT_* variables; token, repository coordinates and file paths come
// from the standard runner variables. A local .env file may seed any of
// them for development runs.
func NewConfig(logger logrus.FieldLogger) (*Config, error) {
	if envMap, err := godotenv.Read(envFile); err == nil {
		for k, val := range envMap {
			if _, exists := os.LookupEnv(k); !exists {
				_ = os.Setenv(k, val)
			}
		}
	}

	v := viper.New()
	v.SetEnvPrefix("input")
	v.AutomaticEnv()

	v.SetDefault("count_drafts", true)
	v.SetDefault("skip_on_failure", true)
	v.SetDefault("revert_to_draft_on_ready", true)

	policy, err := parsePolicy(v.GetString("policy"))
	if err != nil {
		return nil, err
	}

	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		token = v.GetString("github_token")
	}

	cfg := &Config{
		Policy:               policy,
		CountDrafts:          v.GetBool("count_drafts"),
		SkipOnFailure:        v.GetBool("skip_on_failure"),
		RevertToDraftOnReady: v.GetBool("revert_to_draft_on_ready"),
		ExcludeUsers:         parseUserList(v.GetString("exclude_users")),
		ExcludeTeams:         parseTeamList(logger, v.GetString("exclude_teams")),
		CloseComment:         v.GetString("close_comment"),
		BackToDraftComment:   v.GetString("back_to_draft_comment"),
		LabelWhenClosed:      strings.TrimSpace(v.GetString("label_when_closed")),
		Token:                token,
		Repository:           os.Getenv("GITHUB_REPOSITORY"),
		EventPath:            os.Getenv("GITHUB_EVENT_PATH"),
		OutputPath:           os.Getenv("GITHUB_OUTPUT"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the required inputs that NewConfig cannot default.
func (c *Config) Validate() error {
	if len(c.Policy) == 0 {
		return configErrorf("policy must contain at least one rule")
	}
	if strings.TrimSpace(c.CloseComment) == "" {
		return configErrorf("close_comment is required")
	}
	if c.Repository == "" {
		return configErrorf("GITHUB_REPOSITORY is not set")
	}
	if c.EventPath == "" {
		return configErrorf("GITHUB_EVENT_PATH is not set")
	}
	return nil
}

// parsePolicy parses "minMerged:allowedOpen" pairs separated by commas or
// newlines, e.g. "0:1, 5:2, 10:3".
func parsePolicy(raw string) (PolicyTable, error) {
	var table PolicyTable
	for _, field := range splitList(raw) {
		minPart, allowedPart, ok := strings.Cut(field, ":")
		if !ok {
			return nil, configErrorf("policy rule %q is not of the form minMerged:allowedOpen", field)
		}
		minMerged, err := strconv.Atoi(strings.TrimSpace(minPart))
		if err != nil || minMerged < 0 {
			return nil, configErrorf("policy rule %q has an invalid minMerged", field)
		}
		allowedOpen, err := strconv.Atoi(strings.TrimSpace(allowedPart))
		if err != nil || allowedOpen < 0 {
			return nil, configErrorf("policy rule %q has an invalid allowedOpen", field)
		}
		table = append(table, PolicyRule{MinMerged: minMerged, AllowedOpen: allowedOpen})
	}
	if len(table) == 0 {
		return nil, configErrorf("policy must contain at least one rule")
	}
	return table, nil
}

// splitList accepts either a JSON string array or a comma/newline separated
// list and returns the trimmed non-empty elements.
func splitList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	var out []string
	if strings.HasPrefix(raw, "[") {
		var arr []string
		if err := json.Unmarshal([]byte(raw), &arr); err == nil {
			for _, s := range arr {
				if s = strings.TrimSpace(s); s != "" {
					out = append(out, s)
				}
			}
			return out
		}
	}
	for _, s := range strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == '\n' }) {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func parseUserList(raw string) map[string]struct{} {
	users := make(map[string]struct{})
	for _, u := range splitList(raw) {
		users[strings.ToLower(u)] = struct{}{}
	}
	return users
}

// parseTeamList drops entries that are not exactly org/team with a warning
// instead of failing the run.
func parseTeamList(logger logrus.FieldLogger, raw string) []TeamSlug {
	var teams []TeamSlug
	for _, entry := range splitList(raw) {
		org, team, ok := strings.Cut(entry, "/")
		org, team = strings.TrimSpace(org), strings.TrimSpace(team)
		if !ok || org == "" || team == "" || strings.Contains(team, "/") {
			logger.Warnf("ignoring invalid team slug %q, want org/team", entry)
			continue
		}
		teams = append(teams, TeamSlug{Org: org, Team: team})
	}
	return teams
}
