package invasion

// resolveCollisions removes every projectile that overlaps an alien and every
// alien that overlaps a projectile. Pairing is unordered: an entity is
// removed at most once however many overlaps it has.
// Returns the surviving projectiles and the number of aliens destroyed.
func resolveCollisions(bullets []*Projectile, fleet *Fleet) ([]*Projectile, int) {
	if len(bullets) == 0 || fleet.Empty() {
		return bullets, 0
	}

	spent := make([]bool, len(bullets))
	hit := make([]bool, len(fleet.Aliens))
	for i, b := range bullets {
		br := b.Rect()
		for j, a := range fleet.Aliens {
			if br.Intersects(a.Rect()) {
				spent[i] = true
				hit[j] = true
			}
		}
	}

	keptBullets := bullets[:0]
	for i, b := range bullets {
		if !spent[i] {
			keptBullets = append(keptBullets, b)
		}
	}

	destroyed := 0
	keptAliens := fleet.Aliens[:0]
	for j, a := range fleet.Aliens {
		if hit[j] {
			destroyed++
			continue
		}
		keptAliens = append(keptAliens, a)
	}
	fleet.Aliens = keptAliens

	return keptBullets, destroyed
}

// checkBulletAlienCollisions scores destroyed aliens and rolls over to the
// next level when the fleet is gone. Reports whether a level was cleared.
func (g *Game) checkBulletAlienCollisions() bool {
	var destroyed int
	g.bullets, destroyed = resolveCollisions(g.bullets, g.fleet)
	if destroyed > 0 {
		if g.stats.AddScore(destroyed * g.settings.AlienPoints) {
			g.log.Debug("new high score", "score", g.stats.HighScore)
		}
	}

	if !g.fleet.Empty() {
		return false
	}

	g.bullets = g.bullets[:0]
	g.fleet.Build(g.settings)
	g.settings.IncreaseSpeed()
	g.stats.Level++
	g.log.Info("level cleared",
		"level", g.stats.Level,
		"score", g.stats.Score,
		"alien_points", g.settings.AlienPoints,
	)
	return true
}
