package service

import (
	"context"
	"fmt"

	"github.com/mailru/easyjson"
	"github.com/rs/zerolog"
	"github.com/soulgarden/yobit-pairs/dictionary"
	"github.com/soulgarden/yobit-pairs/response"
	"github.com/soulgarden/yobit-pairs/storage"
)

// Getter fetches a path relative to the API base URL.
type Getter interface {
	Get(ctx context.Context, path string) ([]byte, error)
}

type Pairs struct {
	cli     Getter
	storage *storage.Pairs
	logger  *zerolog.Logger
}

func NewPairs(cli Getter, storage *storage.Pairs, logger *zerolog.Logger) *Pairs {
	return &Pairs{cli: cli, storage: storage, logger: logger}
}

// Refresh reloads the registry from the info endpoint. The registry is
// replaced only after the whole list is parsed, so on error it is unchanged.
func (s *Pairs) Refresh(ctx context.Context) error {
	body, err := s.cli.Get(ctx, dictionary.InfoEndpoint)
	if err != nil {
		return err
	}

	if err := checkErrorResponse(body, dictionary.ErrPairsParse, s.logger); err != nil {
		return err
	}

	info := &response.Info{}

	if err := easyjson.Unmarshal(body, info); err != nil {
		s.logger.Err(err).Int("size", len(body)).Msg("unmarshall pairs")

		return fmt.Errorf("%w: %s", dictionary.ErrPairsParse, err.Error())
	}

	if !info.HasPairs || len(info.Pairs) == 0 {
		s.logger.Error().Bool("has_pairs", info.HasPairs).Msg("there are no relevant pairs")

		return fmt.Errorf("%w: there are no relevant pairs", dictionary.ErrPairsParse)
	}

	s.storage.Replace(info.Pairs)

	s.logger.Debug().Int("count", s.storage.Len()).Msg("pairs updated")

	return nil
}

func checkErrorResponse(body []byte, kind error, logger *zerolog.Logger) error {
	er := &response.Error{}

	err := easyjson.Unmarshal(body, er)
	if err != nil {
		logger.Err(err).Int("size", len(body)).Msg("unmarshall")

		return fmt.Errorf("%w: %s", kind, err.Error())
	}

	if er.Reason != "" {
		err = fmt.Errorf("%w: %s", kind, er.Reason)
		logger.Err(err).Bytes("response", body).Msg("received error")

		return err
	}

	return nil
}
