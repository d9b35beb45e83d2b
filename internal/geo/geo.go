// Package geo содержит расчеты расстояний между координатами.
package geo

import "math"

const (
	// EarthRadiusKm радиус Земли, используемый в формуле гаверсинуса
	EarthRadiusKm = 6371.0

	// MaxDistanceFromOriginKm граница разумности координат относительно (0,0)
	MaxDistanceFromOriginKm = 15000.0

	// ProximityThresholdKm порог близости для поиска по местоположению
	ProximityThresholdKm = 2.0
)

// HaversineDistanceKm возвращает расстояние по дуге большого круга в километрах.
// NaN на входе дает NaN на выходе: диапазоны проверяются вызывающим кодом.
func HaversineDistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// WithinOriginBound проверяет, что точка не дальше MaxDistanceFromOriginKm от (0,0)
func WithinOriginBound(lat, lon float64) bool {
	return HaversineDistanceKm(lat, lon, 0, 0) <= MaxDistanceFromOriginKm
}

// IsNearby сообщает, что точки ближе ProximityThresholdKm друг к другу
func IsNearby(lat1, lon1, lat2, lon2 float64) bool {
	return HaversineDistanceKm(lat1, lon1, lat2, lon2) < ProximityThresholdKm
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
