package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"skycast.app/internal/ports"
)

// Geocoder is a mock type for the Geocoder type
type Geocoder struct {
	mock.Mock
}

// ReverseLookup provides a mock function with given fields: ctx, coord
func (m *Geocoder) ReverseLookup(ctx context.Context, coord ports.Coordinate) (*ports.GeoPlace, error) {
	ret := m.Called(ctx, coord)

	var place *ports.GeoPlace
	if ret.Get(0) != nil {
		place = ret.Get(0).(*ports.GeoPlace)
	}
	return place, ret.Error(1)
}

// Search provides a mock function with given fields: ctx, query, limit
func (m *Geocoder) Search(ctx context.Context, query string, limit int) ([]ports.GeoPlace, error) {
	ret := m.Called(ctx, query, limit)

	var places []ports.GeoPlace
	if ret.Get(0) != nil {
		places = ret.Get(0).([]ports.GeoPlace)
	}
	return places, ret.Error(1)
}

// NewGeocoder creates a new instance of Geocoder. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewGeocoder(t interface {
	mock.TestingT
	Cleanup(func())
}) *Geocoder {
	m := &Geocoder{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
