package validator

import (
	"errors"
	"net/mail"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"sportmeet-api/internal/interface/api/rest/dto/atividade"
	"sportmeet-api/internal/interface/api/rest/dto/auth"
	"sportmeet-api/internal/interface/api/rest/dto/user"
)

const (
	minPasswordLen = 8
	maxPasswordLen = 72 // bcrypt safe

	defaultPageSize = 20
	maxPageSize     = 100

	defaultDistanciaKm = 10.0
)

var (
	cepRe     = regexp.MustCompile(`^\d{5}-?\d{3}$`)
	horarioRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

	ufs = map[string]struct{}{
		"AC": {}, "AL": {}, "AP": {}, "AM": {}, "BA": {}, "CE": {}, "DF": {},
		"ES": {}, "GO": {}, "MA": {}, "MT": {}, "MS": {}, "MG": {}, "PA": {},
		"PB": {}, "PR": {}, "PE": {}, "PI": {}, "RJ": {}, "RN": {}, "RS": {},
		"RO": {}, "RR": {}, "SC": {}, "SP": {}, "SE": {}, "TO": {},
	}

	generos = map[string]struct{}{
		"MASCULINO": {}, "FEMININO": {}, "OUTRO": {}, "NAO_INFORMAR": {},
	}

	statuses = map[string]struct{}{
		"OPEN": {}, "CLOSED": {}, "CANCELED": {},
	}
)

// fail builds a single-field result: checks run in declaration order and the
// first failing field wins.
func fail(field, msg string) map[string]string {
	return map[string]string{field: msg}
}

func ValidatePage(pageStr, sizeStr string) (int, int, error) {
	page := 0
	size := defaultPageSize

	if pageStr != "" {
		p, err := strconv.Atoi(pageStr)
		if err != nil || p < 0 {
			return 0, 0, errors.New("invalid page")
		}
		page = p
	}
	if sizeStr != "" {
		s, err := strconv.Atoi(sizeStr)
		if err != nil || s < 1 || s > maxPageSize {
			return 0, 0, errors.New("invalid size")
		}
		size = s
	}

	return page, size, nil
}

func IsUUID(s string) (bool, uuid.UUID) {
	id, err := uuid.Parse(s)
	return err == nil, id
}

func ValidateUserCreate(r user.Request) map[string]string {
	name := strings.TrimSpace(r.Name)
	username := strings.TrimSpace(r.Username)
	email := strings.ToLower(strings.TrimSpace(r.Email))
	street := strings.TrimSpace(r.Street)

	if name == "" {
		return fail("name", "name is required")
	}
	if l := utf8.RuneCountInString(name); l < 2 || l > 100 {
		return fail("name", "name length must be 2-100 characters")
	}

	if r.Genero == "" {
		return fail("genero", "genero is required")
	}
	if _, ok := generos[strings.ToUpper(r.Genero)]; !ok {
		return fail("genero", "unknown genero")
	}

	if username == "" {
		return fail("username", "username is required")
	}
	if l := utf8.RuneCountInString(username); l < 2 || l > 50 {
		return fail("username", "username length must be 2-50 characters")
	}

	if email == "" {
		return fail("email", "email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fail("email", "invalid email format")
	}

	if r.DataNascimento == "" {
		return fail("dataNascimento", "dataNascimento is required")
	}
	if dob, err := time.Parse("2006-01-02", r.DataNascimento); err != nil {
		return fail("dataNascimento", "must be YYYY-MM-DD")
	} else if !dob.Before(time.Now().UTC()) {
		return fail("dataNascimento", "must be a past date")
	}

	if errMsg := validatePassword(r.Password); errMsg != "" {
		return fail("password", errMsg)
	}

	if strings.TrimSpace(r.Phone) == "" {
		return fail("phone", "phone is required")
	}

	if r.Cep == "" {
		return fail("cep", "cep is required")
	}
	if !cepRe.MatchString(r.Cep) {
		return fail("cep", "cep must be in the 00000-000 format")
	}

	if r.Uf == "" {
		return fail("uf", "uf is required")
	}
	if _, ok := ufs[strings.ToUpper(r.Uf)]; !ok {
		return fail("uf", "unknown uf")
	}

	if street == "" {
		return fail("street", "street is required")
	}
	if l := utf8.RuneCountInString(street); l < 2 || l > 120 {
		return fail("street", "street length must be 2-120 characters")
	}

	if len(r.ModalidadesNomes) == 0 {
		return fail("modalidadesNomes", "at least one modalidade is required")
	}
	if errMsg := validateModalidadesNomes(r.ModalidadesNomes); errMsg != "" {
		return fail("modalidadesNomes", errMsg)
	}

	return nil
}

func ValidateUserUpdate(r user.UpdateRequest) map[string]string {
	if r.Name != nil {
		if l := utf8.RuneCountInString(strings.TrimSpace(*r.Name)); l < 2 || l > 100 {
			return fail("name", "name length must be 2-100 characters")
		}
	}
	if r.Genero != nil {
		if _, ok := generos[strings.ToUpper(*r.Genero)]; !ok {
			return fail("genero", "unknown genero")
		}
	}
	if r.Username != nil {
		if l := utf8.RuneCountInString(strings.TrimSpace(*r.Username)); l < 2 || l > 50 {
			return fail("username", "username length must be 2-50 characters")
		}
	}
	if r.Email != nil {
		if _, err := mail.ParseAddress(strings.ToLower(strings.TrimSpace(*r.Email))); err != nil {
			return fail("email", "invalid email format")
		}
	}
	if r.DataNascimento != nil {
		if dob, err := time.Parse("2006-01-02", *r.DataNascimento); err != nil {
			return fail("dataNascimento", "must be YYYY-MM-DD")
		} else if !dob.Before(time.Now().UTC()) {
			return fail("dataNascimento", "must be a past date")
		}
	}
	if r.Password != nil {
		if errMsg := validatePassword(*r.Password); errMsg != "" {
			return fail("password", errMsg)
		}
	}
	if r.Cep != nil && !cepRe.MatchString(*r.Cep) {
		return fail("cep", "cep must be in the 00000-000 format")
	}
	if r.Uf != nil {
		if _, ok := ufs[strings.ToUpper(*r.Uf)]; !ok {
			return fail("uf", "unknown uf")
		}
	}
	if r.Street != nil {
		if l := utf8.RuneCountInString(strings.TrimSpace(*r.Street)); l < 2 || l > 120 {
			return fail("street", "street length must be 2-120 characters")
		}
	}
	if r.ModalidadesNomes != nil {
		if errMsg := validateModalidadesNomes(r.ModalidadesNomes); errMsg != "" {
			return fail("modalidadesNomes", errMsg)
		}
	}

	return nil
}

func ValidateLogin(r auth.LoginRequest) map[string]string {
	if strings.TrimSpace(r.Username) == "" {
		return fail("username", "username is required")
	}
	if strings.TrimSpace(r.Password) == "" {
		return fail("password", "password is required")
	}

	return nil
}

func ValidateAtividadeCreate(r atividade.CreateRequest) map[string]string {
	titulo := strings.TrimSpace(r.Titulo)
	street := strings.TrimSpace(r.Street)

	if titulo == "" {
		return fail("titulo", "titulo is required")
	}
	if l := utf8.RuneCountInString(titulo); l < 2 || l > 50 {
		return fail("titulo", "titulo length must be 2-50 characters")
	}

	if utf8.RuneCountInString(r.Observacoes) > 500 {
		return fail("observacoes", "observacoes length must be at most 500 characters")
	}

	if r.Data == "" {
		return fail("data", "data is required")
	}
	if d, err := time.Parse("2006-01-02", r.Data); err != nil {
		return fail("data", "must be YYYY-MM-DD")
	} else if d.Before(today()) {
		return fail("data", "must not be a past date")
	}

	if r.Horario == "" {
		return fail("horario", "horario is required")
	}
	if !horarioRe.MatchString(r.Horario) {
		return fail("horario", "must be HH:MM")
	}

	if r.Cep == "" {
		return fail("cep", "cep is required")
	}
	if !cepRe.MatchString(r.Cep) {
		return fail("cep", "cep must be in the 00000-000 format")
	}

	if r.Uf == "" {
		return fail("uf", "uf is required")
	}
	if _, ok := ufs[strings.ToUpper(r.Uf)]; !ok {
		return fail("uf", "unknown uf")
	}

	if street == "" {
		return fail("street", "street is required")
	}
	if l := utf8.RuneCountInString(street); l < 2 || l > 120 {
		return fail("street", "street length must be 2-120 characters")
	}

	if strings.TrimSpace(r.Modalidade) == "" {
		return fail("modalidade", "modalidade is required")
	}

	if !r.SemLimite {
		if r.Capacidade == nil {
			return fail("capacidade", "capacidade is required unless semLimite")
		}
		if *r.Capacidade < 1 {
			return fail("capacidade", "capacidade must be positive")
		}
	}

	return nil
}

func ValidateAtividadeUpdate(r atividade.UpdateRequest) map[string]string {
	if r.Titulo != nil {
		if l := utf8.RuneCountInString(strings.TrimSpace(*r.Titulo)); l < 2 || l > 50 {
			return fail("titulo", "titulo length must be 2-50 characters")
		}
	}
	if r.Observacoes != nil && utf8.RuneCountInString(*r.Observacoes) > 500 {
		return fail("observacoes", "observacoes length must be at most 500 characters")
	}
	if r.Data != nil {
		if d, err := time.Parse("2006-01-02", *r.Data); err != nil {
			return fail("data", "must be YYYY-MM-DD")
		} else if d.Before(today()) {
			return fail("data", "must not be a past date")
		}
	}
	if r.Horario != nil && !horarioRe.MatchString(*r.Horario) {
		return fail("horario", "must be HH:MM")
	}
	if r.Cep != nil && !cepRe.MatchString(*r.Cep) {
		return fail("cep", "cep must be in the 00000-000 format")
	}
	if r.Uf != nil {
		if _, ok := ufs[strings.ToUpper(*r.Uf)]; !ok {
			return fail("uf", "unknown uf")
		}
	}
	if r.Street != nil {
		if l := utf8.RuneCountInString(strings.TrimSpace(*r.Street)); l < 2 || l > 120 {
			return fail("street", "street length must be 2-120 characters")
		}
	}
	if r.Capacidade != nil && *r.Capacidade < 1 {
		return fail("capacidade", "capacidade must be positive")
	}
	if r.Status != nil {
		if _, ok := statuses[strings.ToUpper(*r.Status)]; !ok {
			return fail("status", "unknown status")
		}
	}

	return nil
}

// ValidateNearbyQuery checks the proximity search query. An empty distancia
// falls back to 10 km.
func ValidateNearbyQuery(cep, distancia string) (string, float64, error) {
	if cep == "" {
		return "", 0, errors.New("cep is required")
	}
	if !cepRe.MatchString(cep) {
		return "", 0, errors.New("cep must be in the 00000-000 format")
	}

	km := defaultDistanciaKm
	if distancia != "" {
		d, err := strconv.ParseFloat(distancia, 64)
		if err != nil || d <= 0 {
			return "", 0, errors.New("invalid distancia")
		}
		km = d
	}

	return cep, km, nil
}

func validatePassword(password string) string {
	if strings.TrimSpace(password) == "" {
		return "password is required"
	}
	if l := utf8.RuneCountInString(password); l < minPasswordLen || l > maxPasswordLen {
		return "password length must be 8-72 characters"
	}
	return ""
}

func validateModalidadesNomes(nomes []string) string {
	seen := make(map[string]struct{}, len(nomes))
	for _, nome := range nomes {
		n := strings.ToUpper(strings.TrimSpace(nome))
		if n == "" {
			return "modalidade names must not be blank"
		}
		if _, dup := seen[n]; dup {
			return "modalidade names must not repeat"
		}
		seen[n] = struct{}{}
	}
	return ""
}

func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
