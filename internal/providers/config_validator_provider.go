package providers

import (
	"fmt"
	"wxledger/internal/structures"

	"github.com/gookit/validate"
)

const minAuthSecretLength = 16

type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

func (c *CnfValidator) Validate() error {
	v := validate.Struct(c.conf)
	if !v.Validate() {
		return fmt.Errorf("config validation failed: %s", v.Errors.String())
	}

	if c.conf.Auth.Enabled && len(c.conf.Auth.Secret) < minAuthSecretLength {
		return fmt.Errorf("config validation failed: auth.secret must be at least %d characters", minAuthSecretLength)
	}
	if c.conf.Cache.Enabled && c.conf.Cache.TTL < 0 {
		return fmt.Errorf("config validation failed: cache.ttl must not be negative")
	}
	return nil
}
