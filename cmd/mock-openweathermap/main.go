// Command mock-openweathermap serves canned OpenWeatherMap responses for local runs.
// Point OPENWEATHERMAP_API_BASE_URL at http://localhost:8081/data/2.5 and
// OPENWEATHERMAP_GEO_BASE_URL at http://localhost:8081/geo/1.0.
package main

import (
	"log/slog"
	"math"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"skycast.app/internal/ports"
)

const (
	forecastSamples  = 40
	forecastStep     = 3 * time.Hour
	maxMatchDistance = 1.0
)

type mockCity struct {
	place     ports.GeoPlace
	condition ports.Condition
	temp      float64
	humidity  int
	clouds    int
}

var cities = []mockCity{
	{
		place:     ports.GeoPlace{Name: "Kyiv", Country: "UA", State: "Kyiv City", Lat: 50.45, Lon: 30.52},
		condition: ports.Condition{ID: 803, Main: "Clouds", Description: "broken clouds", Icon: "04d"},
		temp:      3.2,
		humidity:  81,
		clouds:    75,
	},
	{
		place:     ports.GeoPlace{Name: "London", Country: "GB", State: "England", Lat: 51.5074, Lon: -0.1278},
		condition: ports.Condition{ID: 500, Main: "Rain", Description: "light rain", Icon: "10d"},
		temp:      9.8,
		humidity:  88,
		clouds:    90,
	},
	{
		place:     ports.GeoPlace{Name: "Sydney", Country: "AU", State: "New South Wales", Lat: -33.8688, Lon: 151.2093},
		condition: ports.Condition{ID: 800, Main: "Clear", Description: "clear sky", Icon: "01d"},
		temp:      27.5,
		humidity:  55,
		clouds:    0,
	},
}

func main() {
	gin.SetMode(gin.ReleaseMode)
	r := newRouter(time.Now)

	port := os.Getenv("MOCK_PORT")
	if port == "" {
		port = "8081"
	}

	slog.Info("Mock OpenWeatherMap server starting", "port", port)
	if err := r.Run(":" + port); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}

func newRouter(now func() time.Time) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	data := r.Group("/data/2.5", requireAPIKey)
	data.GET("/weather", func(c *gin.Context) {
		city, ok := cityAt(c)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"cod": "404", "message": "city not found"})
			return
		}
		c.JSON(http.StatusOK, currentWeather(city, now()))
	})
	data.GET("/forecast", func(c *gin.Context) {
		city, ok := cityAt(c)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"cod": "404", "message": "city not found"})
			return
		}
		c.JSON(http.StatusOK, forecast(city, now()))
	})

	geo := r.Group("/geo/1.0", requireAPIKey)
	geo.GET("/reverse", func(c *gin.Context) {
		city, ok := cityAt(c)
		if !ok {
			c.JSON(http.StatusOK, []ports.GeoPlace{})
			return
		}
		c.JSON(http.StatusOK, []ports.GeoPlace{city.place})
	})
	geo.GET("/direct", func(c *gin.Context) {
		query := strings.ToLower(strings.TrimSpace(c.Query("q")))
		limit, err := strconv.Atoi(c.DefaultQuery("limit", "5"))
		if err != nil || limit <= 0 {
			limit = 5
		}

		places := make([]ports.GeoPlace, 0)
		for _, city := range cities {
			if query != "" && strings.HasPrefix(strings.ToLower(city.place.Name), query) && len(places) < limit {
				places = append(places, city.place)
			}
		}
		c.JSON(http.StatusOK, places)
	})

	return r
}

func requireAPIKey(c *gin.Context) {
	if c.Query("appid") == "" || c.Query("appid") == "invalid" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"cod":     401,
			"message": "Invalid API key. Please see https://openweathermap.org/faq#error401 for more info.",
		})
		return
	}
	c.Next()
}

// cityAt returns the canned city nearest to the lat/lon query, if one is close enough
func cityAt(c *gin.Context) (mockCity, bool) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lon, lonErr := strconv.ParseFloat(c.Query("lon"), 64)
	if latErr != nil || lonErr != nil {
		return mockCity{}, false
	}

	for _, city := range cities {
		if math.Abs(city.place.Lat-lat) <= maxMatchDistance && math.Abs(city.place.Lon-lon) <= maxMatchDistance {
			return city, true
		}
	}
	return mockCity{}, false
}

func currentWeather(city mockCity, now time.Time) ports.CurrentWeatherPayload {
	visibility := 10000
	return ports.CurrentWeatherPayload{
		Cod:     200,
		Coord:   &ports.GeoPoint{Lat: city.place.Lat, Lon: city.place.Lon},
		Weather: []ports.Condition{city.condition},
		Base:    "stations",
		Main: &ports.MainMetrics{
			Temp:      city.temp,
			FeelsLike: city.temp - 1.5,
			TempMin:   city.temp - 2,
			TempMax:   city.temp + 2,
			Pressure:  1014,
			Humidity:  city.humidity,
		},
		Visibility: &visibility,
		Wind:       &ports.Wind{Speed: 4.1, Deg: 220},
		Clouds:     &ports.Clouds{All: city.clouds},
		Dt:         now.Unix(),
		Name:       city.place.Name,
	}
}

func forecast(city mockCity, now time.Time) ports.ForecastPayload {
	start := now.UTC().Truncate(forecastStep).Add(forecastStep)
	list := make([]ports.ForecastEntry, 0, forecastSamples)
	for i := 0; i < forecastSamples; i++ {
		at := start.Add(time.Duration(i) * forecastStep)
		swing := 4 * math.Sin(float64(at.Hour()-9)*math.Pi/12)
		list = append(list, ports.ForecastEntry{
			Dt: at.Unix(),
			Main: ports.ForecastMain{
				Temp:     city.temp + swing,
				TempMin:  city.temp + swing - 1,
				TempMax:  city.temp + swing + 1,
				Humidity: city.humidity,
			},
			Weather: []ports.Condition{city.condition},
			Clouds:  ports.Clouds{All: city.clouds},
			DtText:  at.Format("2006-01-02 15:04:05"),
		})
	}

	return ports.ForecastPayload{
		Cod:   "200",
		Count: len(list),
		List:  list,
		City: ports.City{
			Name:    city.place.Name,
			Country: city.place.Country,
			Coord:   ports.GeoPoint{Lat: city.place.Lat, Lon: city.place.Lon},
		},
	}
}
