package events

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/IBM/sarama"
)

const (
	TopicPurchaseOrderCreated       = "purchase_order.created"
	TopicDetailBarangDiterimaCreate = "barang_diterima.detail.created"
)

// Publisher mengirim event pengadaan. Kegagalan publish tidak menggagalkan request.
type Publisher interface {
	Publish(topic string, key string, event interface{}) error
	Close() error
}

type KafkaPublisher struct {
	producer sarama.SyncProducer
}

func NewKafkaPublisher(brokers []string) (*KafkaPublisher, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	log.Printf("✅ Kafka producer siap: %v", brokers)
	return &KafkaPublisher{producer: producer}, nil
}

func (p *KafkaPublisher) Publish(topic, key string, event interface{}) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", topic, err)
	}

	msg := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(data),
	}
	if _, _, err := p.producer.SendMessage(msg); err != nil {
		return fmt.Errorf("kirim %s: %w", topic, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error { return p.producer.Close() }

// Noop dipakai kalau KAFKA_BROKERS kosong.
type Noop struct{}

func (Noop) Publish(string, string, interface{}) error { return nil }
func (Noop) Close() error { return nil }

// New memilih Kafka kalau broker dikonfigurasi.
func New(brokers []string) (Publisher, error) {
	if len(brokers) == 0 {
		log.Println("⚠️  KAFKA_BROKERS kosong, event pengadaan tidak dikirim")
		return Noop{}, nil
	}
	return NewKafkaPublisher(brokers)
}
