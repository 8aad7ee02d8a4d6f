package database

import coreconfig "catalogbot/core/config"

// Config aliases the database section of the application configuration so the
// connect/migrate helpers do not depend on the full config struct.
type Config = coreconfig.DatabaseConfig
