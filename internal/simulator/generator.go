package simulator

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/radieske/bet-ledger-poc/internal/ledger"
)

// Gerador de catálogo sintético de eventos esportivos para alimentar o demo.
// O núcleo só exige ids únicos e odds > 1.0; o resto é verossimilhança.

var footballTeams = []string{
	"Flamengo", "Palmeiras", "Corinthians", "São Paulo", "Santos", "Grêmio",
	"Internacional", "Atlético-MG", "Cruzeiro", "Botafogo", "Vasco", "Fluminense",
	"Athletico-PR", "Fortaleza", "Ceará", "Bahia",
}

var basketballTeams = []string{
	"Lakers", "Warriors", "Celtics", "Heat", "Nets", "Bucks",
	"Suns", "Nuggets", "Clippers", "Mavericks", "Sixers", "Hawks",
	"Bulls", "Knicks", "Raptors", "Spurs",
}

var tennisPlayers = []string{
	"Novak Djokovic", "Rafael Nadal", "Carlos Alcaraz", "Daniil Medvedev",
	"Stefanos Tsitsipas", "Alexander Zverev", "Andrey Rublev", "Casper Ruud",
	"Taylor Fritz", "Jannik Sinner", "Holger Rune", "Felix Auger-Aliassime",
	"Cameron Norrie", "Hubert Hurkacz", "Frances Tiafoe", "Tommy Paul",
}

var volleyballTeams = []string{
	"Sada Cruzeiro", "Taubaté", "Minas", "Sesi-SP", "Corinthians/Guarulhos",
	"Itapetininga", "Montes Claros", "Brasília", "Campinas", "Osasco",
	"Praia Clube", "Vôlei Renata", "Bauru", "Fluminense", "Botafogo", "Maringá",
}

var sports = []ledger.Sport{
	ledger.SportFootball,
	ledger.SportBasketball,
	ledger.SportTennis,
	ledger.SportVolleyball,
}

// Generator produz catálogos de eventos com odds e datas aleatórias.
// Determinístico para uma mesma seed, o que facilita testes.
type Generator struct {
	rnd *rand.Rand
	now func() time.Time
}

func New(seed int64) *Generator {
	return &Generator{
		rnd: rand.New(rand.NewSource(seed)),
		now: time.Now,
	}
}

// Source adapta o gerador à assinatura ledger.EventSource.
func (g *Generator) Source() ledger.EventSource {
	return g.Catalog
}

// Catalog gera count eventos distribuídos entre os quatro esportes, com
// status 60% upcoming / 20% live / 20% finished e datas coerentes com o
// status, ordenados por prioridade de status e data.
func (g *Generator) Catalog(count int) []ledger.SportEvent {
	perSport := count / len(sports)
	remainder := count % len(sports)

	events := make([]ledger.SportEvent, 0, count)
	for i, sport := range sports {
		n := perSport
		if i < remainder {
			n++
		}
		events = append(events, g.ForSport(sport, n)...)
	}

	statusPriority := map[ledger.EventStatus]int{
		ledger.EventUpcoming: 0,
		ledger.EventLive:     1,
		ledger.EventFinished: 2,
	}
	sort.SliceStable(events, func(i, j int) bool {
		if statusPriority[events[i].Status] != statusPriority[events[j].Status] {
			return statusPriority[events[i].Status] < statusPriority[events[j].Status]
		}
		return events[i].Date.Before(events[j].Date)
	})
	return events
}

// ForSport gera n eventos de um único esporte.
func (g *Generator) ForSport(sport ledger.Sport, n int) []ledger.SportEvent {
	participants := participantsFor(sport)
	events := make([]ledger.SportEvent, 0, n)

	for i := 0; i < n; i++ {
		home, away := g.pickTwo(participants)

		var status ledger.EventStatus
		var date time.Time
		switch r := g.rnd.Float64(); {
		case r < 0.2:
			status = ledger.EventFinished
			date = g.dateAround(-g.rnd.Float64()*7-0.5, 12) // última semana
		case r < 0.4:
			status = ledger.EventLive
			date = g.dateAround(0, 2) // em torno de agora
		default:
			status = ledger.EventUpcoming
			date = g.dateAround(g.rnd.Float64()*14+0.5, 12) // próximas 2 semanas
		}

		events = append(events, ledger.SportEvent{
			ID:       fmt.Sprintf("%s_%d_%d_%06d", sport, g.now().UnixMilli(), i, g.rnd.Intn(1_000_000)),
			HomeTeam: home,
			AwayTeam: away,
			Date:     date,
			Odds:     g.odds(sport),
			Sport:    sport,
			Status:   status,
		})
	}
	return events
}

// odds gera multiplicadores entre 1.5 e 4.0 (empate 2.5–4.5).
// Tênis não tem empate.
func (g *Generator) odds(sport ledger.Sport) ledger.Odds {
	o := ledger.Odds{
		Home: round2(g.rnd.Float64()*2.5 + 1.5),
		Away: round2(g.rnd.Float64()*2.5 + 1.5),
	}
	if sport != ledger.SportTennis {
		o.Draw = round2(g.rnd.Float64()*2.0 + 2.5)
	}
	return o
}

// dateAround devolve uma data deslocada daysFromNow dias, com variação
// aleatória de até varianceHours horas para cada lado.
func (g *Generator) dateAround(daysFromNow float64, varianceHours float64) time.Time {
	base := g.now().Add(time.Duration(daysFromNow * 24 * float64(time.Hour)))
	variance := (g.rnd.Float64() - 0.5) * varianceHours * float64(time.Hour)
	return base.Add(time.Duration(variance)).UTC()
}

// pickTwo sorteia dois participantes distintos.
func (g *Generator) pickTwo(pool []string) (string, string) {
	i := g.rnd.Intn(len(pool))
	j := g.rnd.Intn(len(pool) - 1)
	if j >= i {
		j++
	}
	return pool[i], pool[j]
}

func participantsFor(sport ledger.Sport) []string {
	switch sport {
	case ledger.SportBasketball:
		return basketballTeams
	case ledger.SportTennis:
		return tennisPlayers
	case ledger.SportVolleyball:
		return volleyballTeams
	default:
		return footballTeams
	}
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
