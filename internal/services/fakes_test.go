package services

import (
	"time"

	"supermock_backend/internal/models"
	"supermock_backend/internal/repositories"
)

// fakeUserRepo - репозиторий пользователей в памяти для юнит-тестов
type fakeUserRepo struct {
	users map[string]*models.User
	// счетчики вызовов для проверки побочных эффектов
	addPointsCalls []addPointsCall
	incrementCalls []string
	failAddPoints  error
	failIncrement  error
}

type addPointsCall struct {
	userID string
	amount int
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: map[string]*models.User{}}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (r *fakeUserRepo) FindByID(id string) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Create(user *models.User) error {
	if _, err := r.FindByEmail(user.Email); err == nil {
		return repositories.ErrUserAlreadyExists
	}
	if user.ID == "" {
		user.ID = "user-" + user.Email
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) UpdateProfile(userID string, fields map[string]interface{}) error {
	if _, ok := r.users[userID]; !ok {
		return repositories.ErrUserNotFound
	}
	user := r.users[userID]
	if name, ok := fields["name"].(string); ok {
		user.Name = name
	}
	return nil
}

func (r *fakeUserRepo) AddPoints(userID string, amount int) error {
	if r.failAddPoints != nil {
		return r.failAddPoints
	}
	user, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	user.Points += amount
	r.addPointsCalls = append(r.addPointsCalls, addPointsCall{userID, amount})
	return nil
}

func (r *fakeUserRepo) IncrementFreeInterviews(userID string) error {
	if r.failIncrement != nil {
		return r.failIncrement
	}
	user, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	user.FreeInterviewsUsed++
	r.incrementCalls = append(r.incrementCalls, userID)
	return nil
}

func (r *fakeUserRepo) FindAll(limit, offset int) ([]models.User, error) {
	var out []models.User
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) CountAll() (int64, error) {
	return int64(len(r.users)), nil
}

// fakeAppRepo - репозиторий откликов в памяти
type fakeAppRepo struct {
	apps        map[string]*models.Application
	creditCalls []creditCall
	failCredit  error
}

type creditCall struct {
	appID       string
	ownerID     string
	applicantID string
	amount      int
}

func newFakeAppRepo(apps ...*models.Application) *fakeAppRepo {
	repo := &fakeAppRepo{apps: map[string]*models.Application{}}
	for _, a := range apps {
		repo.apps[a.ID] = a
	}
	return repo
}

func (r *fakeAppRepo) CreateWithCardFlip(app *models.Application) error {
	if app.ID == "" {
		app.ID = "app-" + app.CardID + "-" + app.ApplicantID
	}
	r.apps[app.ID] = app
	return nil
}

func (r *fakeAppRepo) FindByID(id string) (*models.Application, error) {
	app, ok := r.apps[id]
	if !ok {
		return nil, repositories.ErrApplicationNotFound
	}
	return app, nil
}

func (r *fakeAppRepo) FindByCardAndApplicant(cardID, applicantID string) (*models.Application, error) {
	for _, a := range r.apps {
		if a.CardID == cardID && a.ApplicantID == applicantID {
			return a, nil
		}
	}
	return nil, repositories.ErrApplicationNotFound
}

func (r *fakeAppRepo) List(filter repositories.ApplicationFilter) ([]models.Application, error) {
	var out []models.Application
	for _, a := range r.apps {
		if filter.ApplicantID != "" && a.ApplicantID != filter.ApplicantID {
			continue
		}
		if filter.CardID != "" && a.CardID != filter.CardID {
			continue
		}
		out = append(out, *a)
	}
	return out, nil
}

func (r *fakeAppRepo) Update(app *models.Application) error {
	if _, ok := r.apps[app.ID]; !ok {
		return repositories.ErrApplicationNotFound
	}
	r.apps[app.ID] = app
	return nil
}

func (r *fakeAppRepo) CreditInterviewPoints(appID, ownerID, applicantID string, amount int) error {
	if r.failCredit != nil {
		return r.failCredit
	}
	app, ok := r.apps[appID]
	if !ok {
		return repositories.ErrApplicationNotFound
	}
	if app.PointsAwarded {
		return repositories.ErrAlreadyAwarded
	}
	app.PointsAwarded = true
	r.creditCalls = append(r.creditCalls, creditCall{appID, ownerID, applicantID, amount})
	return nil
}

// fakeCardRepo - репозиторий карточек в памяти
type fakeCardRepo struct {
	cards map[string]*models.InterviewCard
}

func newFakeCardRepo(cards ...*models.InterviewCard) *fakeCardRepo {
	repo := &fakeCardRepo{cards: map[string]*models.InterviewCard{}}
	for _, c := range cards {
		repo.cards[c.ID] = c
	}
	return repo
}

func (r *fakeCardRepo) Create(card *models.InterviewCard) error {
	if card.ID == "" {
		card.ID = "card-" + card.UserID + "-" + card.Profession
	}
	r.cards[card.ID] = card
	return nil
}

func (r *fakeCardRepo) FindByID(id string) (*models.InterviewCard, error) {
	card, ok := r.cards[id]
	if !ok {
		return nil, repositories.ErrCardNotFound
	}
	return card, nil
}

func (r *fakeCardRepo) List(filter repositories.CardFilter) ([]models.InterviewCard, error) {
	var out []models.InterviewCard
	for _, c := range r.cards {
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		if filter.UserID != "" && c.UserID != filter.UserID {
			continue
		}
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeCardRepo) Update(card *models.InterviewCard) error {
	if _, ok := r.cards[card.ID]; !ok {
		return repositories.ErrCardNotFound
	}
	r.cards[card.ID] = card
	return nil
}

func (r *fakeCardRepo) Delete(cardID string) error {
	if _, ok := r.cards[cardID]; !ok {
		return repositories.ErrCardNotFound
	}
	delete(r.cards, cardID)
	return nil
}

// fakeSubRepo - репозиторий подписок в памяти
type fakeSubRepo struct {
	subs   []*models.Subscription
	points map[string]int // балансы для проверки списания
}

func newFakeSubRepo(points map[string]int) *fakeSubRepo {
	if points == nil {
		points = map[string]int{}
	}
	return &fakeSubRepo{points: points}
}

func (r *fakeSubRepo) Purchase(sub *models.Subscription, cost int) error {
	if r.points[sub.UserID] < cost {
		return repositories.ErrInsufficientPoints
	}
	r.points[sub.UserID] -= cost
	if sub.ID == "" {
		sub.ID = "sub-" + sub.UserID
	}
	r.subs = append(r.subs, sub)
	return nil
}

func (r *fakeSubRepo) FindByUser(userID string) ([]models.Subscription, error) {
	var out []models.Subscription
	for _, s := range r.subs {
		if s.UserID == userID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeSubRepo) MarkExpired(now time.Time) (int64, error) {
	var count int64
	for _, s := range r.subs {
		if s.Status == models.SubscriptionStatusActive && s.EndDate.Before(now) {
			s.Status = models.SubscriptionStatusExpired
			count++
		}
	}
	return count, nil
}
