package rabbitmq

import (
	"fmt"
	"sync"

	"image-insights-srv/config"
	"image-insights-srv/pkg/rabbitmq"
)

var (
	instance rabbitmq.IPublisher
	once     sync.Once
	mu       sync.RWMutex
	initErr  error
)

// Connect initializes the RabbitMQ publisher using singleton pattern.
func Connect(cfg config.RabbitMQConfig) (rabbitmq.IPublisher, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	if initErr != nil {
		once = sync.Once{}
		initErr = nil
	}

	var err error
	once.Do(func() {
		client, e := rabbitmq.NewPublisher(rabbitmq.Config{
			URL:      cfg.URL,
			Exchange: cfg.Exchange,
		})
		if e != nil {
			err = fmt.Errorf("failed to initialize RabbitMQ publisher: %w", e)
			initErr = err
			return
		}
		instance = client
	})

	return instance, err
}

// GetPublisher returns the singleton RabbitMQ publisher instance.
func GetPublisher() rabbitmq.IPublisher {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		panic("RabbitMQ publisher not initialized. Call Connect() first")
	}
	return instance
}

// HealthCheck checks if the RabbitMQ publisher is initialized and connected.
func HealthCheck() error {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		return fmt.Errorf("RabbitMQ publisher not initialized")
	}
	if !instance.IsReady() {
		return fmt.Errorf("RabbitMQ publisher not connected")
	}
	return nil
}

// Disconnect closes the RabbitMQ publisher and resets the singleton.
func Disconnect() error {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		if err := instance.Close(); err != nil {
			return err
		}
		instance = nil
		once = sync.Once{}
		initErr = nil
	}
	return nil
}
