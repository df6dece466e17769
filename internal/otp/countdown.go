package otp

// Countdown обратный отсчет до возможности повторной отправки кода.
// Значение явное и продвигается только вызовом Tick - никакого
// собственного таймера у модели нет, источник тиков выбирает вызывающий
type Countdown struct {
	seconds   int
	remaining int
}

// NewCountdown создает отсчет на seconds секунд, уже запущенный
func NewCountdown(seconds int) *Countdown {
	if seconds < 0 {
		seconds = 0
	}
	return &Countdown{seconds: seconds, remaining: seconds}
}

// Tick продвигает отсчет на одну секунду
func (c *Countdown) Tick() {
	if c.remaining > 0 {
		c.remaining--
	}
}

// Remaining возвращает оставшиеся секунды
func (c *Countdown) Remaining() int {
	return c.remaining
}

// Ready сообщает, можно ли запрашивать код повторно
func (c *Countdown) Ready() bool {
	return c.remaining == 0
}

// Arm перезапускает отсчет заново
func (c *Countdown) Arm() {
	c.remaining = c.seconds
}
