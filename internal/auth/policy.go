package auth

import "gamehub/backend/internal/models"

// CanModifyGame reports whether user may delete the game or replace its
// archive. Mutation is allowed for the game's author and for admins; every
// mutating game route goes through this single check.
func CanModifyGame(user *models.User, game *models.Game) bool {
	if user == nil || game == nil {
		return false
	}
	if user.Role == "admin" {
		return true
	}
	return game.UserID != nil && *game.UserID == user.ID
}
