package repository

import (
	"sync"

	"hotelbooking/pkg/model"
)

// EntityStore holds rooms and users keyed by their identifiers.
// Upserts replace the stored value; values handed out are copies.
type EntityStore interface {
	UpsertRoom(room model.Room) (created bool)
	UpsertUser(user model.User) (created bool)
	FindRoom(roomNumber int) (model.Room, bool)
	FindUser(userID int) (model.User, bool)
	// SetBalance changes the balance of an existing user and reports
	// whether the user was found.
	SetBalance(userID int, balance int) bool
	// AllRooms and AllUsers return entities in first-insertion order.
	AllRooms() []model.Room
	AllUsers() []model.User
}

type memoryEntityStore struct {
	mu sync.RWMutex

	rooms     map[int]model.Room
	roomOrder []int

	users     map[int]model.User
	userOrder []int
}

func NewMemoryEntityStore() EntityStore {
	return &memoryEntityStore{
		rooms: make(map[int]model.Room),
		users: make(map[int]model.User),
	}
}

func (s *memoryEntityStore) UpsertRoom(room model.Room) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, exists := s.rooms[room.RoomNumber]
	if !exists {
		s.roomOrder = append(s.roomOrder, room.RoomNumber)
	}
	s.rooms[room.RoomNumber] = room
	return !exists
}

func (s *memoryEntityStore) UpsertUser(user model.User) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, exists := s.users[user.UserID]
	if !exists {
		s.userOrder = append(s.userOrder, user.UserID)
	}
	s.users[user.UserID] = user
	return !exists
}

func (s *memoryEntityStore) FindRoom(roomNumber int) (model.Room, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	room, ok := s.rooms[roomNumber]
	return room, ok
}

func (s *memoryEntityStore) FindUser(userID int) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[userID]
	return user, ok
}

func (s *memoryEntityStore) SetBalance(userID int, balance int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return false
	}
	user.Balance = balance
	s.users[userID] = user
	return true
}

func (s *memoryEntityStore) AllRooms() []model.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rooms := make([]model.Room, 0, len(s.roomOrder))
	for _, n := range s.roomOrder {
		rooms = append(rooms, s.rooms[n])
	}
	return rooms
}

func (s *memoryEntityStore) AllUsers() []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]model.User, 0, len(s.userOrder))
	for _, id := range s.userOrder {
		users = append(users, s.users[id])
	}
	return users
}
