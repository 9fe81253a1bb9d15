package parameter

// Board layout, world units (y up, origin at screen center)
const (
	// BallDiameter is the sprite diameter shared by balls and pegs
	BallDiameter = 10.0

	// ColliderScale is the collider radius relative to the sprite diameter
	ColliderScale = 0.7

	// BoardRows is the number of peg rows in the pyramid
	BoardRows = 16

	// FirstRowPegs is the peg count of the top row; each row below adds one
	FirstRowPegs = 3

	// PegSpacingX is the horizontal distance between adjacent pegs
	PegSpacingX = BallDiameter + 40

	// PegSpacingY is the vertical distance between rows
	PegSpacingY = BallDiameter + 25

	// BoardTopY is the y coordinate of the top row
	BoardTopY = 200.0

	// PegRadius is the collision radius of a peg
	PegRadius = BallDiameter * ColliderScale

	// PowerScale is the constant c in power = round((slot * c)^2)
	PowerScale = 0.7

	// ZoneHalfExtent is the half size of the square zone sensor
	ZoneHalfExtent = 10.0

	// ZoneOffsetY is the distance of zone centers below the last row
	ZoneOffsetY = 20.0
)
