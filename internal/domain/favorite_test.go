package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFavoriteKind(t *testing.T) {
	id := int64(7)

	cases := []struct {
		name string
		fav  Favorite
		want FavoriteKind
	}{
		{name: "person", fav: Favorite{PeopleID: &id}, want: FavoritePerson},
		{name: "planet", fav: Favorite{PlanetID: &id}, want: FavoritePlanet},
		{name: "both", fav: Favorite{PeopleID: &id, PlanetID: &id}, want: FavoriteBoth},
		{name: "none", fav: Favorite{}, want: FavoriteNone},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.fav.Kind())
		})
	}
}
