package invaders

// Collides reports whether two boxed entities overlap.
func Collides(a, b Boxed) bool {
	return a.Box().Intersects(b.Box())
}

// ResolveBulletAlien removes every bullet/alien pair that overlaps and returns
// the surviving bullets, the surviving aliens and the number of aliens killed.
//
// Each bullet kills at most one alien and each alien absorbs at most one bullet;
// bullets are matched in order and take the first free alien they overlap.
// Matching runs over the unmodified slices and removal happens afterwards.
func ResolveBulletAlien(bullets []*Bullet, aliens []*Alien) ([]*Bullet, []*Alien, int) {
	if len(bullets) == 0 || len(aliens) == 0 {
		return bullets, aliens, 0
	}

	deadBullets := make([]bool, len(bullets))
	deadAliens := make([]bool, len(aliens))
	killed := 0

	for bi, b := range bullets {
		for ai, a := range aliens {
			if deadAliens[ai] || !Collides(b, a) {
				continue
			}
			deadBullets[bi] = true
			deadAliens[ai] = true
			killed++
			break
		}
	}

	if killed == 0 {
		return bullets, aliens, 0
	}

	liveBullets := bullets[:0]
	for i, b := range bullets {
		if !deadBullets[i] {
			liveBullets = append(liveBullets, b)
		}
	}
	liveAliens := aliens[:0]
	for i, a := range aliens {
		if !deadAliens[i] {
			liveAliens = append(liveAliens, a)
		}
	}
	return liveBullets, liveAliens, killed
}

// CheckShipAlien reports whether any alien overlaps the ship.
func CheckShipAlien(ship *Ship, aliens []*Alien) bool {
	for _, a := range aliens {
		if Collides(ship, a) {
			return true
		}
	}
	return false
}

// CheckAliensBottom reports whether any alien has reached the bottom of the screen.
func CheckAliensBottom(aliens []*Alien, screenH int) bool {
	for _, a := range aliens {
		if a.Box().Bottom() >= screenH {
			return true
		}
	}
	return false
}
