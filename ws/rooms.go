package ws

import "fmt"

// Room naming convention shared by the hub and the publishers. A buyer joins
// their personal room, vendor staff join their canteen's room.
func UserRoom(userID uint) string {
	return fmt.Sprintf("user:%d", userID)
}

func CanteenRoom(canteenID uint) string {
	return fmt.Sprintf("canteen:%d", canteenID)
}
