package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"sportmeet-api/internal/application/ports"
	domain "sportmeet-api/internal/domain/atividade"
	modalidadeDomain "sportmeet-api/internal/domain/modalidade"
	"sportmeet-api/internal/domain/user"
	"sportmeet-api/internal/infrastructure/mq"
)

var (
	// ErrCoordenadasIndisponiveis signals that the atividade CEP could not be
	// resolved into coordinates, so the atividade cannot be created.
	ErrCoordenadasIndisponiveis = errors.New("could not resolve coordinates for the given cep")
	// ErrCepNaoEncontrado signals that the search CEP is unknown to every
	// geocoding provider.
	ErrCepNaoEncontrado = errors.New("cep not found")
)

type AtividadeService struct {
	atividadeRepository  domain.Repository
	userRepository       user.Repository
	modalidadeRepository modalidadeDomain.Repository
	geocoder             ports.Geocoder
	mq                   ports.RabbitMQ
	mCounter             *prometheus.CounterVec
}

func NewAtividadeService(
	atividadeRepository domain.Repository,
	userRepository user.Repository,
	modalidadeRepository modalidadeDomain.Repository,
	geocoder ports.Geocoder,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.AtividadeService {
	return &AtividadeService{
		atividadeRepository:  atividadeRepository,
		userRepository:       userRepository,
		modalidadeRepository: modalidadeRepository,
		geocoder:             geocoder,
		mq:                   mq,
		mCounter:             mCounter,
	}
}

// Create validates the criador and the modalidade, geocodes the CEP and
// persists the atividade in OPEN state with the criador as first participant.
func (as *AtividadeService) Create(ctx context.Context, req domain.Atividade, criadorUsername string) (*domain.Atividade, error) {
	criador, err := as.userRepository.FetchByUsername(ctx, strings.ToLower(criadorUsername))
	if err != nil {
		return nil, err
	}
	if criador == nil {
		return nil, user.ErrNotFound
	}

	req.ModalidadeNome = strings.ToUpper(strings.TrimSpace(req.ModalidadeNome))
	m, err := as.modalidadeRepository.FetchByNome(ctx, req.ModalidadeNome)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, modalidadeDomain.ErrInvalida
	}

	req.CriadorUUID = criador.UUID
	req.Cep = normalizeCep(req.Cep)
	req.Uf = strings.ToUpper(req.Uf)
	req.Status = domain.StatusOpen

	coords, err := as.geocoder.Coordinates(ctx, req.Cep)
	if err != nil {
		return nil, err
	}
	if coords == nil {
		return nil, ErrCoordenadasIndisponiveis
	}
	req.Latitude = coords.Latitude
	req.Longitude = coords.Longitude

	aRet, err := as.atividadeRepository.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	as.publish(mq.ActionAtividadeCreated, aRet.UUID, criadorUsername)
	as.mCounter.WithLabelValues("atividade_created_total").Inc()

	return aRet, nil
}

// Update lets the criador, and only the criador, change their atividade.
// A CEP change re-runs geocoding so the stored coordinates stay in step.
func (as *AtividadeService) Update(ctx context.Context, atividadeUUID uuid.UUID, up domain.Update, username string) (*domain.Atividade, error) {
	a, err := as.atividadeRepository.FetchByUUID(ctx, atividadeUUID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	if a.CriadorUsername != strings.ToLower(username) {
		return nil, domain.ErrNotCriador
	}

	if up.Cep != nil {
		cleaned := normalizeCep(*up.Cep)
		up.Cep = &cleaned
	}
	if up.Uf != nil {
		uppered := strings.ToUpper(*up.Uf)
		up.Uf = &uppered
	}

	a.Merge(up)

	if !a.SemLimite && a.Capacidade != nil && len(a.Participantes) > *a.Capacidade {
		return nil, domain.ErrCapacidadeBelow
	}

	if up.Cep != nil {
		coords, err := as.geocoder.Coordinates(ctx, a.Cep)
		if err != nil {
			return nil, err
		}
		if coords == nil {
			return nil, ErrCoordenadasIndisponiveis
		}
		a.Latitude = coords.Latitude
		a.Longitude = coords.Longitude
	}

	aRet, err := as.atividadeRepository.Update(ctx, *a)
	if err != nil {
		return nil, err
	}
	if aRet == nil {
		return nil, domain.ErrNotFound
	}

	as.publish(mq.ActionAtividadeUpdated, aRet.UUID, username)
	as.mCounter.WithLabelValues("atividade_updated_total").Inc()

	return aRet, nil
}

func (as *AtividadeService) Inscrever(ctx context.Context, atividadeUUID uuid.UUID, username string) error {
	u, err := as.userRepository.FetchByUsername(ctx, strings.ToLower(username))
	if err != nil {
		return err
	}
	if u == nil {
		return user.ErrNotFound
	}

	if err = as.atividadeRepository.Inscrever(ctx, atividadeUUID, u.UUID); err != nil {
		return err
	}

	as.publish(mq.ActionAtividadeInscricao, atividadeUUID, username)
	as.mCounter.WithLabelValues("atividade_inscricao_total").Inc()

	return nil
}

func (as *AtividadeService) FindNearbyPaginated(ctx context.Context, cep string, distanciaKm float64, page, size int) (domain.Atividades, int64, error) {
	coords, err := as.geocoder.Coordinates(ctx, normalizeCep(cep))
	if err != nil {
		return nil, 0, err
	}
	if coords == nil {
		return nil, 0, ErrCepNaoEncontrado
	}

	return as.atividadeRepository.FetchNearby(ctx, coords.Latitude, coords.Longitude, distanciaKm, page, size)
}

func (as *AtividadeService) FindAllPaginated(ctx context.Context, page, size int) (domain.Atividades, int64, error) {
	return as.atividadeRepository.FetchPage(ctx, page, size)
}

func (as *AtividadeService) DeleteByUUID(ctx context.Context, atividadeUUID uuid.UUID, username string) error {
	a, err := as.atividadeRepository.FetchByUUID(ctx, atividadeUUID)
	if err != nil {
		return err
	}
	if a == nil {
		return domain.ErrNotFound
	}
	if a.CriadorUsername != strings.ToLower(username) {
		return domain.ErrNotCriador
	}

	if err = as.atividadeRepository.Delete(ctx, atividadeUUID); err != nil {
		return err
	}

	as.publish(mq.ActionAtividadeDeleted, atividadeUUID, username)
	as.mCounter.WithLabelValues("atividade_deleted_total").Inc()

	return nil
}

func (as *AtividadeService) publish(action string, atividadeUUID uuid.UUID, username string) {
	as.mq.GetInputChan() <- mq.Event{
		Id:      uuid.New(),
		TS:      time.Now(),
		Action:  action,
		Subject: atividadeUUID.String(),
		Payload: map[string]string{"username": username},
	}
}
