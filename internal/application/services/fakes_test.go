package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rabbitmq/amqp091-go"

	"sportmeet-api/internal/application/ports"
	"sportmeet-api/internal/domain/atividade"
	"sportmeet-api/internal/domain/modalidade"
	"sportmeet-api/internal/domain/user"
	"sportmeet-api/internal/infrastructure/mq"
)

type FakeUserRepository struct {
	FetchByUUIDFunc     func(ctx context.Context, id user.UUID) (*user.User, error)
	FetchByUsernameFunc func(ctx context.Context, username string) (*user.User, error)
	FetchByEmailFunc    func(ctx context.Context, email string) (*user.User, error)
	FetchPageFunc       func(ctx context.Context, page, size int) (user.Users, int64, error)
	CreateFunc          func(ctx context.Context, u user.User) (*user.User, error)
	UpdateFunc          func(ctx context.Context, u user.User) (*user.User, error)
	DeleteFunc          func(ctx context.Context, id user.UUID) error
}

func (f *FakeUserRepository) FetchByUUID(ctx context.Context, id user.UUID) (*user.User, error) {
	if f.FetchByUUIDFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchByUUIDFunc(ctx, id)
}
func (f *FakeUserRepository) FetchByUsername(ctx context.Context, username string) (*user.User, error) {
	if f.FetchByUsernameFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchByUsernameFunc(ctx, username)
}
func (f *FakeUserRepository) FetchByEmail(ctx context.Context, email string) (*user.User, error) {
	if f.FetchByEmailFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchByEmailFunc(ctx, email)
}
func (f *FakeUserRepository) FetchPage(ctx context.Context, page, size int) (user.Users, int64, error) {
	if f.FetchPageFunc == nil {
		return nil, 0, errors.New("not used")
	}
	return f.FetchPageFunc(ctx, page, size)
}
func (f *FakeUserRepository) Create(ctx context.Context, u user.User) (*user.User, error) {
	if f.CreateFunc == nil {
		return nil, errors.New("not used")
	}
	return f.CreateFunc(ctx, u)
}
func (f *FakeUserRepository) Update(ctx context.Context, u user.User) (*user.User, error) {
	if f.UpdateFunc == nil {
		return nil, errors.New("not used")
	}
	return f.UpdateFunc(ctx, u)
}
func (f *FakeUserRepository) Delete(ctx context.Context, id user.UUID) error {
	if f.DeleteFunc == nil {
		return errors.New("not used")
	}
	return f.DeleteFunc(ctx, id)
}

type FakeAtividadeRepository struct {
	FetchByUUIDFunc     func(ctx context.Context, id uuid.UUID) (*atividade.Atividade, error)
	FetchPageFunc       func(ctx context.Context, page, size int) (atividade.Atividades, int64, error)
	FetchNearbyFunc     func(ctx context.Context, lat, lon, radiusKm float64, page, size int) (atividade.Atividades, int64, error)
	CreateFunc          func(ctx context.Context, req atividade.Atividade) (*atividade.Atividade, error)
	UpdateFunc          func(ctx context.Context, req atividade.Atividade) (*atividade.Atividade, error)
	DeleteFunc          func(ctx context.Context, id uuid.UUID) error
	DeleteByCriadorFunc func(ctx context.Context, criador user.UUID) error
	InscreverFunc       func(ctx context.Context, atividadeUUID uuid.UUID, participante user.UUID) error
}

func (f *FakeAtividadeRepository) FetchByUUID(ctx context.Context, id uuid.UUID) (*atividade.Atividade, error) {
	if f.FetchByUUIDFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchByUUIDFunc(ctx, id)
}
func (f *FakeAtividadeRepository) FetchPage(ctx context.Context, page, size int) (atividade.Atividades, int64, error) {
	if f.FetchPageFunc == nil {
		return nil, 0, errors.New("not used")
	}
	return f.FetchPageFunc(ctx, page, size)
}
func (f *FakeAtividadeRepository) FetchNearby(ctx context.Context, lat, lon, radiusKm float64, page, size int) (atividade.Atividades, int64, error) {
	if f.FetchNearbyFunc == nil {
		return nil, 0, errors.New("not used")
	}
	return f.FetchNearbyFunc(ctx, lat, lon, radiusKm, page, size)
}
func (f *FakeAtividadeRepository) Create(ctx context.Context, req atividade.Atividade) (*atividade.Atividade, error) {
	if f.CreateFunc == nil {
		return nil, errors.New("not used")
	}
	return f.CreateFunc(ctx, req)
}
func (f *FakeAtividadeRepository) Update(ctx context.Context, req atividade.Atividade) (*atividade.Atividade, error) {
	if f.UpdateFunc == nil {
		return nil, errors.New("not used")
	}
	return f.UpdateFunc(ctx, req)
}
func (f *FakeAtividadeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if f.DeleteFunc == nil {
		return errors.New("not used")
	}
	return f.DeleteFunc(ctx, id)
}
func (f *FakeAtividadeRepository) DeleteByCriador(ctx context.Context, criador user.UUID) error {
	if f.DeleteByCriadorFunc == nil {
		return errors.New("not used")
	}
	return f.DeleteByCriadorFunc(ctx, criador)
}
func (f *FakeAtividadeRepository) Inscrever(ctx context.Context, atividadeUUID uuid.UUID, participante user.UUID) error {
	if f.InscreverFunc == nil {
		return errors.New("not used")
	}
	return f.InscreverFunc(ctx, atividadeUUID, participante)
}

type FakeModalidadeRepository struct {
	FetchAllFunc     func(ctx context.Context) (modalidade.Modalidades, error)
	FetchByNomeFunc  func(ctx context.Context, nome string) (*modalidade.Modalidade, error)
	FetchByNomesFunc func(ctx context.Context, nomes []string) (modalidade.Modalidades, error)
}

func (f *FakeModalidadeRepository) FetchAll(ctx context.Context) (modalidade.Modalidades, error) {
	if f.FetchAllFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchAllFunc(ctx)
}
func (f *FakeModalidadeRepository) FetchByNome(ctx context.Context, nome string) (*modalidade.Modalidade, error) {
	if f.FetchByNomeFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchByNomeFunc(ctx, nome)
}
func (f *FakeModalidadeRepository) FetchByNomes(ctx context.Context, nomes []string) (modalidade.Modalidades, error) {
	if f.FetchByNomesFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchByNomesFunc(ctx, nomes)
}

type FakeGeocoder struct {
	CoordinatesFunc func(ctx context.Context, cep string) (*ports.Coordenadas, error)
}

func (f *FakeGeocoder) Coordinates(ctx context.Context, cep string) (*ports.Coordenadas, error) {
	if f.CoordinatesFunc == nil {
		return nil, errors.New("not used")
	}
	return f.CoordinatesFunc(ctx, cep)
}

// FakeRabbitMQ collects published events on a buffered channel so tests can
// assert on them without a broker.
type FakeRabbitMQ struct {
	in chan mq.Event
}

func NewFakeRabbitMQ() *FakeRabbitMQ {
	return &FakeRabbitMQ{in: make(chan mq.Event, 16)}
}

func (f *FakeRabbitMQ) Connect(ctx context.Context, dsn string) error { return nil }
func (f *FakeRabbitMQ) Init() error                                   { return nil }
func (f *FakeRabbitMQ) PublisherWorker(ctx context.Context)           {}
func (f *FakeRabbitMQ) GetInputChan() chan mq.Event                   { return f.in }
func (f *FakeRabbitMQ) GetConn() *amqp091.Connection                  { return nil }

func newTestCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "test", Name: "events_total"},
		[]string{"event"},
	)
}
