package config

// RabbitMQConfig points at the broker that carries booking.confirmed
// messages.  An empty URL disables both publishing and the consumer.
type RabbitMQConfig struct {
	URL             string `env:"RABBITMQ_URL"`
	Queue           string `env:"RABBITMQ_BOOKING_QUEUE" envDefault:"booking.confirmed"`
	ConsumerEnabled bool   `env:"BOOKING_CONSUMER_ENABLED" envDefault:"false"`
	LogDir          string `env:"BOOKING_LOG_DIR" envDefault:"logs"`
}

func (c RabbitMQConfig) Enabled() bool { return c.URL != "" }
