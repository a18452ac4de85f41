// Package service contains the booking coordinator: the one component
// allowed to span the seat inventory and the wallet ledger in a single
// logical transaction.
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/iliyamo/show-booking/internal/model"
	"github.com/iliyamo/show-booking/internal/queue"
	"github.com/iliyamo/show-booking/internal/repository"
)

// EventPublisher pushes domain events to the message broker.  The
// service treats it as optional and fire-and-forget: a nil publisher
// disables events and a failed publish never affects the booking
// outcome.
type EventPublisher interface {
	BookingConfirmed(ctx context.Context, ev queue.BookingConfirmedEvent) error
	BookingCancelled(ctx context.Context, ev queue.BookingCancelledEvent) error
}

// BookingService orchestrates a booking across the inventory and the
// ledger.  Seats and money are guarded by independent locks, so the
// two steps cannot share one critical section; instead the service
// reserves first, charges second, and compensates with a release when
// the charge is declined.  The only observable end states are fully
// committed (seats down, balance down, record written) and fully
// rolled back (no net change, no record).
type BookingService struct {
	users    *repository.UserRepo
	wallets  *repository.WalletRepo
	shows    *repository.ShowRepo
	bookings *repository.BookingRepo
	events   EventPublisher
}

// NewBookingService wires the coordinator.  events may be nil.
func NewBookingService(users *repository.UserRepo, wallets *repository.WalletRepo, shows *repository.ShowRepo, bookings *repository.BookingRepo, events EventPublisher) *BookingService {
	if users == nil || wallets == nil || shows == nil || bookings == nil {
		panic("nil repository passed to NewBookingService")
	}
	return &BookingService{users: users, wallets: wallets, shows: shows, bookings: bookings, events: events}
}

// Create books seats seats in show showID for user userID.
//
// The attempt walks validate -> reserve -> charge -> commit.  A missing
// user or show fails with ErrNotFound before anything is mutated.  A
// reservation shortfall fails with ErrSoldOut, a declined debit with
// ErrInsufficientFunds; in the latter case the already-taken seats are
// handed back before the error is returned, so a decline leaves no net
// change behind.
func (s *BookingService) Create(ctx context.Context, showID, userID int64, seats int) (model.Booking, error) {
	if seats <= 0 {
		return model.Booking{}, repository.ErrInvalidAmount
	}
	if !s.users.Exists(userID) {
		return model.Booking{}, fmt.Errorf("user %d: %w", userID, repository.ErrNotFound)
	}

	price, err := s.shows.Reserve(showID, seats)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Booking{}, fmt.Errorf("show %d: %w", showID, err)
		}
		return model.Booking{}, err
	}

	amount := price * int64(seats)
	// The wallet may have been deleted out-of-band; charging recreates
	// it at zero, which then declines like any other short balance.
	s.wallets.CreateIfAbsent(userID)
	if amount > 0 {
		if _, err := s.wallets.Debit(userID, amount); err != nil {
			s.releaseWithRetry(showID, seats)
			if errors.Is(err, repository.ErrInsufficientFunds) {
				return model.Booking{}, err
			}
			return model.Booking{}, fmt.Errorf("charge wallet of user %d: %w", userID, err)
		}
	}

	b := s.bookings.Create(showID, userID, seats, amount)
	s.publishConfirmed(b)
	return b, nil
}

// CancelByUser cancels every booking of the given user, releasing the
// seats and refunding the charged amounts.  Returns ErrNoBookings if
// the user has none.
func (s *BookingService) CancelByUser(ctx context.Context, userID int64) error {
	bs := s.bookings.ByUser(userID)
	if len(bs) == 0 {
		return ErrNoBookings
	}
	for _, b := range bs {
		s.cancel(b)
	}
	return nil
}

// CancelByUserAndShow cancels the user's bookings in one show.
// Returns ErrNoBookings if there are none.
func (s *BookingService) CancelByUserAndShow(ctx context.Context, userID, showID int64) error {
	bs := s.bookings.ByUserAndShow(userID, showID)
	if len(bs) == 0 {
		return ErrNoBookings
	}
	for _, b := range bs {
		s.cancel(b)
	}
	return nil
}

// CancelAll cancels every booking of every user.
func (s *BookingService) CancelAll(ctx context.Context) {
	for _, b := range s.bookings.All() {
		s.cancel(b)
	}
}

// ListByUser returns the user's bookings.  A user with no bookings
// gets an empty list.
func (s *BookingService) ListByUser(userID int64) []model.Booking {
	return s.bookings.ByUser(userID)
}

// ErrNoBookings is returned by the cancellation entry points when the
// selection matches nothing.  Handlers translate it into a 404.
var ErrNoBookings = fmt.Errorf("no bookings: %w", repository.ErrNotFound)

// cancel undoes one booking: refund the charged amount, hand the seats
// back, then drop the record.  Each booking is removed only after its
// own compensations succeeded, so an interrupted bulk cancellation
// never loses seats or money.
func (s *BookingService) cancel(b model.Booking) {
	if b.AmountCharged > 0 {
		s.wallets.CreateIfAbsent(b.UserID)
		if _, err := s.wallets.Credit(b.UserID, b.AmountCharged); err != nil {
			log.Printf("booking-service: refund %d to user %d failed: %v", b.AmountCharged, b.UserID, err)
			return
		}
	}
	s.releaseWithRetry(b.ShowID, b.SeatsBooked)
	s.bookings.Remove(b.ID)
	s.publishCancelled(b)
}

// releaseWithRetry hands seats back to the inventory.  A stuck
// reservation permanently under-reports inventory, so transient
// failures are retried with backoff until the release lands.  A
// not-found or invariant-violation answer is not transient: it means
// the seats being returned were never taken from this show, which is a
// coordination bug to surface, not to retry.
func (s *BookingService) releaseWithRetry(showID int64, seats int) {
	backoff := 10 * time.Millisecond
	for {
		err := s.shows.Release(showID, seats)
		if err == nil {
			return
		}
		if errors.Is(err, repository.ErrNotFound) ||
			errors.Is(err, repository.ErrInvariantViolation) ||
			errors.Is(err, repository.ErrInvalidAmount) {
			log.Printf("booking-service: release of %d seats for show %d refused: %v", seats, showID, err)
			return
		}
		log.Printf("booking-service: release of %d seats for show %d failed: %v; retrying in %s", seats, showID, err, backoff)
		time.Sleep(backoff)
		if backoff < time.Second {
			backoff *= 2
		}
	}
}

func (s *BookingService) publishConfirmed(b model.Booking) {
	if s.events == nil {
		return
	}
	ev := queue.BookingConfirmedEvent{
		BookingID:     b.ID,
		UserID:        b.UserID,
		ShowID:        b.ShowID,
		SeatsBooked:   b.SeatsBooked,
		AmountCharged: b.AmountCharged,
		ConfirmedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.events.BookingConfirmed(ctx, ev)
	}()
}

func (s *BookingService) publishCancelled(b model.Booking) {
	if s.events == nil {
		return
	}
	ev := queue.BookingCancelledEvent{
		BookingID:      b.ID,
		UserID:         b.UserID,
		ShowID:         b.ShowID,
		SeatsReleased:  b.SeatsBooked,
		AmountRefunded: b.AmountCharged,
		CancelledAt:    time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.events.BookingCancelled(ctx, ev)
	}()
}
