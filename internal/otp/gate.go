package otp

import (
	"sync"
	"time"
)

// TimeProvider абстракция времени для тестируемости
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальное время
type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Gate отслеживает кулдаун повторной отправки кода и подтвержденные
// телефоны. Кулдаун - защита интерфейса от двойных кликов, а не
// серверный rate limit: настоящие лимиты применяет бэкенд магазина
type Gate struct {
	mu sync.Mutex

	cooldownSeconds int
	verifiedTTL     time.Duration
	clock           TimeProvider

	countdowns map[string]*Countdown
	verified   map[string]time.Time // телефон -> срок действия подтверждения
}

// NewGate создает gate с кулдауном и временем жизни подтверждения
func NewGate(cooldownSeconds, verifiedTTLMinutes int, clock TimeProvider) *Gate {
	return &Gate{
		cooldownSeconds: cooldownSeconds,
		verifiedTTL:     time.Duration(verifiedTTLMinutes) * time.Minute,
		clock:           clock,
		countdowns:      make(map[string]*Countdown),
		verified:        make(map[string]time.Time),
	}
}

// TryRequest пытается начать отправку кода на телефон.
// Возвращает (0, true) и взводит кулдаун, либо (секунды до повтора, false)
func (g *Gate) TryRequest(phone string) (int, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if cd, ok := g.countdowns[phone]; ok && !cd.Ready() {
		return cd.Remaining(), false
	}

	g.countdowns[phone] = NewCountdown(g.cooldownSeconds)
	return 0, true
}

// Disarm снимает кулдаун с телефона. Вызывается, когда отправка кода
// не состоялась - повторный запрос должен быть доступен сразу
func (g *Gate) Disarm(phone string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.countdowns, phone)
}

// RetryAfter возвращает секунды до возможности повторного запроса кода
func (g *Gate) RetryAfter(phone string) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	cd, ok := g.countdowns[phone]
	if !ok {
		return 0
	}
	return cd.Remaining()
}

// Tick продвигает все активные отсчеты на секунду и выбрасывает
// завершенные, заодно подчищая протухшие подтверждения
func (g *Gate) Tick() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for phone, cd := range g.countdowns {
		cd.Tick()
		if cd.Ready() {
			delete(g.countdowns, phone)
		}
	}

	now := g.clock.Now()
	for phone, expiry := range g.verified {
		if now.After(expiry) {
			delete(g.verified, phone)
		}
	}
}

// MarkVerified помечает телефон подтвержденным на время verifiedTTL
func (g *Gate) MarkVerified(phone string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.verified[phone] = g.clock.Now().Add(g.verifiedTTL)
}

// IsVerified сообщает, подтвержден ли телефон и не истек ли срок
func (g *Gate) IsVerified(phone string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	expiry, ok := g.verified[phone]
	if !ok {
		return false
	}
	return !g.clock.Now().After(expiry)
}
