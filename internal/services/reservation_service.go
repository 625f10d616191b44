package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/kiri-yossy/bezihuri/internal/logger"
	"github.com/kiri-yossy/bezihuri/internal/models"
	"github.com/kiri-yossy/bezihuri/internal/repositories"
	"github.com/kiri-yossy/bezihuri/internal/services/dto"
	"github.com/kiri-yossy/bezihuri/pkg/apperrors"
)

// ReservationService drives the reservation lifecycle. Every transition is a
// conditional UPDATE on both the reservation row and the item row inside one
// transaction, so two concurrent actors can never both win the same move.
type ReservationService struct {
	reservationRepo  repositories.ReservationRepository
	itemRepo         repositories.ItemRepository
	conversationRepo repositories.ConversationRepository
}

func NewReservationService(
	reservationRepo repositories.ReservationRepository,
	itemRepo repositories.ItemRepository,
	conversationRepo repositories.ConversationRepository,
) *ReservationService {
	return &ReservationService{
		reservationRepo:  reservationRepo,
		itemRepo:         itemRepo,
		conversationRepo: conversationRepo,
	}
}

// transition describes one legal move of the lifecycle: the reservation goes
// from -> to while the item goes itemFrom -> itemTo atomically.
type transition struct {
	name              string
	from              models.ReservationStatus
	to                models.ReservationStatus
	itemFrom          models.ItemStatus
	itemTo            models.ItemStatus
	spawnConversation bool
}

var (
	transitionApprove = transition{
		name:              "approve",
		from:              models.ReservationStatusPendingApproval,
		to:                models.ReservationStatusReserved,
		itemFrom:          models.ItemStatusPendingReservation,
		itemTo:            models.ItemStatusReserved,
		spawnConversation: true,
	}
	transitionReject = transition{
		name:     "reject",
		from:     models.ReservationStatusPendingApproval,
		to:       models.ReservationStatusRejected,
		itemFrom: models.ItemStatusPendingReservation,
		itemTo:   models.ItemStatusAvailable,
	}
	transitionComplete = transition{
		name:     "complete",
		from:     models.ReservationStatusReserved,
		to:       models.ReservationStatusCompleted,
		itemFrom: models.ItemStatusReserved,
		itemTo:   models.ItemStatusSoldOut,
	}
)

// Request places a hold on an available item for the given buyer. The item
// moves to pending_reservation and a pending_approval reservation is created
// with the price snapshotted at this moment.
func (s *ReservationService) Request(db *gorm.DB, itemID, buyerID string) (*dto.CreateReservationResponse, error) {
	item, err := s.itemRepo.FindByID(db, itemID)
	if err != nil {
		if errors.Is(err, repositories.ErrItemNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if item.SellerID == buyerID {
		return nil, apperrors.ErrOwnItemReservation
	}
	if item.Status != models.ItemStatusAvailable {
		return nil, apperrors.ErrItemNotReservable
	}

	reservation := &models.Reservation{
		ItemID:             item.ID,
		BuyerID:            buyerID,
		PriceAtReservation: item.Price,
		Status:             models.ReservationStatusPendingApproval,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		claimed, err := s.itemRepo.ClaimStatus(tx, item.ID, models.ItemStatusAvailable, models.ItemStatusPendingReservation)
		if err != nil {
			return apperrors.DatabaseError(err, "reservation", "Failed to claim item")
		}
		if !claimed {
			// Someone else reserved or bought the item between our read
			// and this update.
			return apperrors.ErrItemNotReservable
		}
		if err := s.reservationRepo.Create(tx, reservation); err != nil {
			return apperrors.DatabaseError(err, "reservation", "Failed to create reservation")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("reservation requested",
		"reservation_id", reservation.ID, "item_id", item.ID, "buyer_id", buyerID)

	return &dto.CreateReservationResponse{ReservationID: reservation.ID}, nil
}

// Approve confirms a pending request. The reservation becomes reserved, the
// item becomes reserved, and a conversation between seller and buyer is
// created in the same transaction. Approving twice yields a conflict, not a
// silent success.
func (s *ReservationService) Approve(db *gorm.DB, reservationID, actorID string) error {
	return s.applyTransition(db, reservationID, actorID, transitionApprove)
}

// Reject declines a pending request and releases the item back to available.
func (s *ReservationService) Reject(db *gorm.DB, reservationID, actorID string) error {
	return s.applyTransition(db, reservationID, actorID, transitionReject)
}

// Complete marks a reserved transaction as finished. The item is sold out and
// both parties become eligible to review each other.
func (s *ReservationService) Complete(db *gorm.DB, reservationID, actorID string) error {
	return s.applyTransition(db, reservationID, actorID, transitionComplete)
}

func (s *ReservationService) applyTransition(db *gorm.DB, reservationID, actorID string, tr transition) error {
	reservation, err := s.reservationRepo.FindByID(db, reservationID)
	if err != nil {
		if errors.Is(err, repositories.ErrReservationNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	// All seller-side transitions are restricted to the item's seller. The
	// authorization check runs before the status check so a non-party never
	// learns the reservation's state.
	if reservation.Item.SellerID != actorID {
		return apperrors.ErrNotReservationActor
	}

	if reservation.Status != tr.from {
		return apperrors.ErrConflict("reservation",
			"Reservation is not in a state that allows this operation")
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		claimed, err := s.reservationRepo.ClaimStatus(tx, reservation.ID, tr.from, tr.to)
		if err != nil {
			return apperrors.DatabaseError(err, "reservation", "Failed to update reservation")
		}
		if !claimed {
			return apperrors.ErrConflict("reservation",
				"Reservation was already processed")
		}

		claimed, err = s.itemRepo.ClaimStatus(tx, reservation.ItemID, tr.itemFrom, tr.itemTo)
		if err != nil {
			return apperrors.DatabaseError(err, "reservation", "Failed to update item")
		}
		if !claimed {
			return apperrors.ErrConflict("reservation",
				"Item state changed while processing the reservation")
		}

		if tr.spawnConversation {
			if err := s.spawnConversation(tx, reservation); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info("reservation transition applied",
		"reservation_id", reservation.ID, "transition", tr.name, "actor_id", actorID)
	return nil
}

func (s *ReservationService) spawnConversation(tx *gorm.DB, reservation *models.Reservation) error {
	conversation := &models.Conversation{ReservationID: reservation.ID}
	if err := s.conversationRepo.Create(tx, conversation); err != nil {
		// The unique index on reservation_id makes a second spawn fail
		// here instead of producing a duplicate thread.
		return apperrors.DatabaseError(err, "conversation", "Failed to create conversation")
	}
	if err := s.conversationRepo.AddParticipants(tx, conversation.ID, reservation.Item.SellerID, reservation.BuyerID); err != nil {
		return apperrors.DatabaseError(err, "conversation", "Failed to add participants")
	}
	return nil
}

// ListPendingForSeller returns the seller's approval inbox, newest first.
func (s *ReservationService) ListPendingForSeller(db *gorm.DB, sellerID string) ([]*dto.ReservationSummary, error) {
	reservations, err := s.reservationRepo.FindPendingBySeller(db, sellerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	summaries := make([]*dto.ReservationSummary, 0, len(reservations))
	for i := range reservations {
		summaries = append(summaries, toReservationSummary(&reservations[i], sellerID))
	}
	return summaries, nil
}

// ListForBuyer returns the buyer's own reservation history, newest first.
func (s *ReservationService) ListForBuyer(db *gorm.DB, buyerID string) ([]*dto.ReservationSummary, error) {
	reservations, err := s.reservationRepo.FindByBuyer(db, buyerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	summaries := make([]*dto.ReservationSummary, 0, len(reservations))
	for i := range reservations {
		summaries = append(summaries, toReservationSummary(&reservations[i], buyerID))
	}
	return summaries, nil
}

func toReservationSummary(reservation *models.Reservation, currentUserID string) *dto.ReservationSummary {
	summary := &dto.ReservationSummary{
		ID:                 reservation.ID,
		Status:             reservation.Status,
		PriceAtReservation: reservation.PriceAtReservation,
		CreatedAt:          reservation.CreatedAt,
	}
	if reservation.Item.ID != "" {
		summary.Item = toItemResponse(&reservation.Item, currentUserID)
	}
	if reservation.Buyer.ID != "" {
		summary.Buyer = &dto.BuyerInfo{
			ID:       reservation.Buyer.ID,
			Username: reservation.Buyer.Username,
		}
	}
	return summary
}
