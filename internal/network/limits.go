// Copyright (c) 2021-2026 Rustam Gilyazov and Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package network

import (
	"time"

	"dario.cat/mergo"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// Limits contains the request pacing and retry settings.
type Limits struct {
	// Attempts is the number of attempts made for a rate limited request.
	Attempts int `toml:"attempts" validate:"gte=1,lte=10"`
	// RetryWait is the delay after the API responded with HTTP 429.
	RetryWait time.Duration `toml:"retry_wait" validate:"gte=0s,lte=1m"`
	// Pacing is the minimum interval between the paced requests.
	Pacing time.Duration `toml:"pacing" validate:"gte=0s,lte=1m"`
	// Burst is the number of paced requests allowed at once.
	Burst uint `toml:"burst" validate:"gte=1,lte=100"`
}

// DefLimits are the defaults, these match the pacing the tag sync was
// always run with.
var DefLimits = Limits{
	Attempts:  defNumAttempts,
	RetryWait: defRetryWait,
	Pacing:    250 * time.Millisecond,
	Burst:     1,
}

var (
	validate *validator.Validate
	// ErrTranslations contains the English translations of the validation
	// errors.
	ErrTranslations ut.Translator
)

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	english := en.New()
	uni := ut.New(english, english)
	ErrTranslations, _ = uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, ErrTranslations); err != nil {
		panic(err)
	}
}

// Validate checks that the limits are within the allowed ranges.
func (l *Limits) Validate() error {
	return validate.Struct(l)
}

// Apply overrides the values of l with the non-zero values of other, and
// validates the result.
func (l *Limits) Apply(other Limits) error {
	if err := mergo.Merge(l, other, mergo.WithOverride); err != nil {
		return err
	}
	return l.Validate()
}
