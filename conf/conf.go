package conf

import (
	"fmt"
	"os"

	"github.com/jinzhu/configor"
	"github.com/rs/zerolog/log"
	"github.com/soulgarden/yobit-pairs/dictionary"
)

type App struct {
	BaseURL   string `json:"base_url"   default:"https://yobit.net/api/3"`
	UserAgent string `json:"user_agent" default:"yobit-pairs"`

	Locale string `json:"locale" default:"en"`

	// RecoverFetchErrors keeps the menu running after a failed u/t/r action
	// instead of terminating the process.
	RecoverFetchErrors bool `json:"recover_fetch_errors"`

	Debug bool `json:"debug"`
}

func New() *App {
	path := os.Getenv("CFG_PATH")

	if path == "" {
		path = "./conf/conf.json"
	}

	c, err := Load(path)
	if err != nil {
		log.Fatal().Err(err).Msg("conf validation errors")
	}

	return c
}

func Load(path string) (*App, error) {
	c := &App{}

	if err := configor.New(&configor.Config{ErrorOnUnmatchedKeys: true}).Load(c, path); err != nil {
		return nil, err
	}

	if c.Locale != dictionary.LocaleEN && c.Locale != dictionary.LocaleRU {
		return nil, fmt.Errorf("%w: %s", dictionary.ErrInvalidLocale, c.Locale)
	}

	return c, nil
}
