package services

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/crypto/bcrypt"

	"sportmeet-api/internal/application/ports"
	"sportmeet-api/internal/domain/atividade"
	modalidadeDomain "sportmeet-api/internal/domain/modalidade"
	domain "sportmeet-api/internal/domain/user"
	"sportmeet-api/internal/infrastructure/mq"
)

var nonDigitsRe = regexp.MustCompile(`\D`)

func normalizeCep(cep string) string {
	return nonDigitsRe.ReplaceAllString(cep, "")
}

func upperAll(nomes []string) []string {
	out := make([]string, len(nomes))
	for idx, n := range nomes {
		out[idx] = strings.ToUpper(strings.TrimSpace(n))
	}
	return out
}

type UserService struct {
	userRepository       domain.Repository
	atividadeRepository  atividade.Repository
	modalidadeRepository modalidadeDomain.Repository
	mq                   ports.RabbitMQ
	mCounter             *prometheus.CounterVec
}

func NewUserService(
	userRepository domain.Repository,
	atividadeRepository atividade.Repository,
	modalidadeRepository modalidadeDomain.Repository,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.UserService {
	return &UserService{
		userRepository:       userRepository,
		atividadeRepository:  atividadeRepository,
		modalidadeRepository: modalidadeRepository,
		mq:                   mq,
		mCounter:             mCounter,
	}
}

// Register creates a user. Email and username are lowercased before any
// lookup, the email check runs strictly before the username check and both
// before any write. Modalidade names must all exist; a partial match fails
// the whole registration.
func (us *UserService) Register(ctx context.Context, u domain.User, password string) (*domain.User, error) {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.Username = strings.ToLower(strings.TrimSpace(u.Username))
	u.Cep = normalizeCep(u.Cep)
	u.Uf = strings.ToUpper(u.Uf)
	u.Modalidades = upperAll(u.Modalidades)

	existing, err := us.userRepository.FetchByEmail(ctx, u.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailTaken
	}

	existing, err = us.userRepository.FetchByUsername(ctx, u.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUsernameTaken
	}

	if len(u.Modalidades) > 0 {
		found, err := us.modalidadeRepository.FetchByNomes(ctx, u.Modalidades)
		if err != nil {
			return nil, err
		}
		if len(found) != len(u.Modalidades) {
			return nil, modalidadeDomain.ErrInvalida
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	hashStr := string(hash)
	u.PasswordHash = &hashStr

	uRet, err := us.userRepository.Create(ctx, u)
	if err != nil {
		return nil, err
	}

	us.publish(mq.ActionUserCreated, uRet)
	us.mCounter.WithLabelValues("user_created_total").Inc()

	return uRet, nil
}

func (us *UserService) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	u, err := us.userRepository.FetchByUsername(ctx, strings.ToLower(username))
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (us *UserService) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, err := us.userRepository.FetchByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (us *UserService) FindPage(ctx context.Context, page, size int) (domain.Users, int64, error) {
	return us.userRepository.FetchPage(ctx, page, size)
}

// Update merges only the present fields. The password, when non-blank, is
// re-hashed; the modalidade list, when present at all (even empty), fully
// replaces the stored set.
func (us *UserService) Update(ctx context.Context, username string, up domain.Update) (*domain.User, error) {
	u, err := us.userRepository.FetchByUsername(ctx, strings.ToLower(username))
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}

	if up.Email != nil {
		lowered := strings.ToLower(strings.TrimSpace(*up.Email))
		up.Email = &lowered
	}
	if up.Username != nil {
		lowered := strings.ToLower(strings.TrimSpace(*up.Username))
		up.Username = &lowered
	}
	if up.Cep != nil {
		cleaned := normalizeCep(*up.Cep)
		up.Cep = &cleaned
	}
	if up.Uf != nil {
		uppered := strings.ToUpper(*up.Uf)
		up.Uf = &uppered
	}

	// same conflict ordering as Register: email first, then username
	if up.Email != nil && *up.Email != u.Email {
		existing, err := us.userRepository.FetchByEmail(ctx, *up.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrEmailTaken
		}
	}
	if up.Username != nil && *up.Username != u.Username {
		existing, err := us.userRepository.FetchByUsername(ctx, *up.Username)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrUsernameTaken
		}
	}

	u.Merge(up)

	if up.Password != nil && strings.TrimSpace(*up.Password) != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*up.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hashStr := string(hash)
		u.PasswordHash = &hashStr
	}

	if up.ModalidadesNomes != nil {
		nomes := upperAll(up.ModalidadesNomes)
		if len(nomes) > 0 {
			found, err := us.modalidadeRepository.FetchByNomes(ctx, nomes)
			if err != nil {
				return nil, err
			}
			if len(found) != len(nomes) {
				return nil, modalidadeDomain.ErrInvalida
			}
		}
		u.Modalidades = nomes
	}

	uRet, err := us.userRepository.Update(ctx, *u)
	if err != nil {
		return nil, err
	}
	if uRet == nil {
		return nil, domain.ErrNotFound
	}

	us.publish(mq.ActionUserUpdated, uRet)
	us.mCounter.WithLabelValues("user_updated_total").Inc()

	return uRet, nil
}

// DeleteSelf removes the user's own activities before the user record so no
// dangling criador references survive.
func (us *UserService) DeleteSelf(ctx context.Context, username string) error {
	u, err := us.userRepository.FetchByUsername(ctx, strings.ToLower(username))
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrNotFound
	}

	if err = us.atividadeRepository.DeleteByCriador(ctx, u.UUID); err != nil {
		return err
	}
	if err = us.userRepository.Delete(ctx, u.UUID); err != nil {
		return err
	}

	us.publish(mq.ActionUserDeleted, u)
	us.mCounter.WithLabelValues("user_deleted_total").Inc()

	return nil
}

func (us *UserService) publish(action string, u *domain.User) {
	us.mq.GetInputChan() <- mq.Event{
		Id:      uuid.New(),
		TS:      time.Now(),
		Action:  action,
		Subject: u.UUID.String(),
		Payload: map[string]string{"username": u.Username, "email": u.Email},
	}
}
