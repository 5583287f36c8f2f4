package configs

// Redis configures the optional Redis event publisher. When Enabled is
// set every ledger event is appended to EventsKey and, if Channel is not
// empty, published on Channel.
type Redis struct {
	Enabled   bool   `env:"ENABLED" envDefault:"false"`
	Addr      string `env:"ADDRESS" envDefault:"127.0.0.1:6379"`
	Password  string `env:"PASSWORD"`
	DB        int    `env:"DB" envDefault:"0"`
	EventsKey string `env:"EVENTS_KEY" envDefault:"comefundme:events"`
	Channel   string `env:"CHANNEL" envDefault:"comefundme"`
}
