package handlers

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// The lookup page: a text field, a search button and the last result.
// Background color, icon and alert banner come from the /weather response;
// a failed lookup clears the previous reading and resets the background.
const indexHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Weather Lookup</title>
<style>
  body { font-family: sans-serif; margin: 0; padding: 2rem; text-align: center;
         background: #FFFFFF; transition: background 0.3s; }
  .search { display: flex; gap: 0.5rem; justify-content: center; }
  .search input { padding: 0.5rem; font-size: 1rem; width: 16rem; }
  .search button { padding: 0.5rem 1rem; font-size: 1rem; }
  #icon { font-size: 5rem; margin: 1rem 0 0; }
  #alert { display: none; margin: 1rem auto; padding: 0.75rem; max-width: 28rem;
           border-radius: 5px; color: #fff; font-weight: bold; }
  #error { display: none; color: #D32F2F; margin: 1rem; }
  #reading { display: none; margin: 1rem auto; padding: 1.5rem; max-width: 28rem;
             background: rgba(255,255,255,0.6); border-radius: 10px; }
  #temp { font-size: 3rem; font-weight: bold; margin: 0.5rem 0 0; }
  #desc { font-style: italic; }
  .details { display: flex; justify-content: space-evenly; margin-top: 1rem; }
</style>
</head>
<body>
<h1>Weather Lookup</h1>
<div class="search">
  <input id="city" type="text" placeholder="Enter city name" autofocus>
  <button onclick="search()">Get Weather</button>
</div>
<div id="error"></div>
<div id="alert"></div>
<div id="icon"></div>
<div id="reading">
  <h2 id="place"></h2>
  <div id="desc"></div>
  <div id="temp"></div>
  <div id="feels"></div>
  <div class="details">
    <div>Humidity<br><b id="humidity"></b></div>
    <div>Wind<br><b id="wind"></b></div>
  </div>
</div>
<script>
function clearDisplay() {
  document.body.style.background = '#FFFFFF';
  document.getElementById('reading').style.display = 'none';
  document.getElementById('alert').style.display = 'none';
  document.getElementById('icon').textContent = '';
  document.getElementById('error').style.display = 'none';
}
function showError(message) {
  clearDisplay();
  var el = document.getElementById('error');
  el.textContent = message;
  el.style.display = 'block';
}
function search() {
  var city = document.getElementById('city').value.trim();
  if (!city) { showError('Please enter a city name.'); return; }
  fetch('/weather?city=' + encodeURIComponent(city))
    .then(function (resp) {
      return resp.json().then(function (data) {
        if (!resp.ok) { showError(data.error || 'Lookup failed.'); return; }
        render(data);
      });
    })
    .catch(function () { showError('Network error. Please try again.'); });
}
function render(data) {
  clearDisplay();
  document.body.style.background = data.background.color;
  document.getElementById('icon').textContent = data.icon;
  document.getElementById('place').textContent = data.city + ', ' + data.country;
  document.getElementById('desc').textContent = data.description;
  document.getElementById('temp').textContent = data.temperature.toFixed(1) + '°C';
  document.getElementById('feels').textContent = 'Feels like ' + data.feels_like.toFixed(1) + '°C';
  document.getElementById('humidity').textContent = data.humidity + '%';
  document.getElementById('wind').textContent = data.wind_speed + ' m/s';
  document.getElementById('reading').style.display = 'block';
  if (data.alert) {
    var banner = document.getElementById('alert');
    banner.textContent = data.alert.message;
    banner.style.background = data.alert.color;
    banner.style.display = 'block';
  }
}
document.getElementById('city').addEventListener('keydown', function (e) {
  if (e.key === 'Enter') { search(); }
});
</script>
</body>
</html>
`

var indexTemplate = template.Must(template.New("index").Parse(indexHTML))

type IndexHandler struct {
	logger *zap.Logger
}

func NewIndexHandler(logger *zap.Logger) *IndexHandler {
	return &IndexHandler{logger: logger}
}

func (h *IndexHandler) Index(c *gin.Context) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := indexTemplate.Execute(c.Writer, nil); err != nil {
		h.logger.Error("Error executing index template", zap.Error(err))
	}
}
