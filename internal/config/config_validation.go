package config

// validate checks that the final merged [Config] satisfies the invariants
// required before the service may boot. The database settings are mandatory:
// the service fails fast rather than serve traffic against an unreachable or
// misconfigured store.
func (cfg *Config) validate() error {
	db := cfg.Storage.DB
	if db.Host == "" || db.User == "" || db.Password == "" || db.Database == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.Address == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
