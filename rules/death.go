package rules

func deathByBodyCollision(head, body Point) bool {
	return head == body
}

func deathByOutOfBounds(head Point, width, height int) bool {
	return (head.X < 0) || (head.X >= width) || (head.Y < 0) || (head.Y >= height)
}
