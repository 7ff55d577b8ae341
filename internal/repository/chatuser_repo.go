package repository

import (
	"database/sql"
	"encoding/json"

	"github.com/primeestate/primeestate/internal/domain"
)

// ChatUserRepository handles chat user persistence
type ChatUserRepository struct {
	db *DB
}

// NewChatUserRepository creates a new chat user repository
func NewChatUserRepository(db *DB) *ChatUserRepository {
	return &ChatUserRepository{db: db}
}

// CreateOrUpdate creates a chat user, or refreshes the stored name and
// conversation when a user with the same contact already exists. The
// returned user's id is stable per contact.
func (r *ChatUserRepository) CreateOrUpdate(name, contact string, conversation []domain.ConversationMessage) (*domain.ChatUser, error) {
	existing, err := r.GetByContact(contact)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if name != "" && name != existing.Name {
			if _, err := r.db.Exec(`UPDATE chat_users SET name = ? WHERE id = ?`, name, existing.ID); err != nil {
				return nil, err
			}
			existing.Name = name
		}
		if conversation != nil {
			if err := r.UpdateConversation(existing.ID, conversation); err != nil {
				return nil, err
			}
			existing.Conversation = conversation
		}
		return existing, nil
	}

	conversationJSON, _ := json.Marshal(conversation)
	res, err := r.db.Exec(`
		INSERT INTO chat_users (name, contact, conversation)
		VALUES (?, ?, ?)
	`, name, contact, string(conversationJSON))
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &domain.ChatUser{ID: id, Name: name, Contact: contact, Conversation: conversation}, nil
}

// Get retrieves a chat user by ID. Returns nil when not found.
func (r *ChatUserRepository) Get(id int64) (*domain.ChatUser, error) {
	return r.get(`SELECT id, name, contact, conversation FROM chat_users WHERE id = ?`, id)
}

// GetByContact retrieves a chat user by contact. Returns nil when not found.
func (r *ChatUserRepository) GetByContact(contact string) (*domain.ChatUser, error) {
	return r.get(`SELECT id, name, contact, conversation FROM chat_users WHERE contact = ?`, contact)
}

func (r *ChatUserRepository) get(q string, arg any) (*domain.ChatUser, error) {
	user := &domain.ChatUser{}
	var conversationJSON sql.NullString

	err := r.db.QueryRow(q, arg).Scan(&user.ID, &user.Name, &user.Contact, &conversationJSON)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if conversationJSON.Valid && conversationJSON.String != "" {
		json.Unmarshal([]byte(conversationJSON.String), &user.Conversation)
	}
	return user, nil
}

// UpdateConversation replaces a chat user's stored transcript
func (r *ChatUserRepository) UpdateConversation(id int64, conversation []domain.ConversationMessage) error {
	conversationJSON, _ := json.Marshal(conversation)
	res, err := r.db.Exec(`UPDATE chat_users SET conversation = ? WHERE id = ?`,
		string(conversationJSON), id)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List retrieves all chat users
func (r *ChatUserRepository) List() ([]domain.ChatUser, error) {
	rows, err := r.db.Query(`SELECT id, name, contact, conversation FROM chat_users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.ChatUser
	for rows.Next() {
		user := domain.ChatUser{}
		var conversationJSON sql.NullString
		if err := rows.Scan(&user.ID, &user.Name, &user.Contact, &conversationJSON); err != nil {
			return nil, err
		}
		if conversationJSON.Valid && conversationJSON.String != "" {
			json.Unmarshal([]byte(conversationJSON.String), &user.Conversation)
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// Count returns the number of chat users
func (r *ChatUserRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM chat_users`).Scan(&count)
	return count, err
}
