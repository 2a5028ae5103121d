package philo

import (
	"math/rand"
	"strings"

	"exophilos/internal/models"
)

// citations est le recueil statique, groupé par thème
var citations = []models.Citation{
	// Liberté
	{
		Text:        "L'homme est condamné à être libre.",
		Author:      "Jean-Paul Sartre",
		Theme:       "Liberté",
		Explanation: "Sartre exprime ici que la liberté n'est pas un don mais une condition inévitable de l'existence humaine. Nous sommes 'condamnés' car nous ne pouvons échapper à la responsabilité de nos choix.",
	},
	{
		Text:        "La liberté consiste à pouvoir faire tout ce qui ne nuit pas à autrui.",
		Author:      "Déclaration des droits de l'homme, 1789",
		Theme:       "Liberté",
		Explanation: "Cette définition juridique pose les limites sociales de la liberté individuelle. Elle établit que la liberté de chacun s'arrête là où commence celle d'autrui.",
	},
	{
		Text:        "La liberté de l'homme consiste à ne pouvoir obéir qu'à lui-même.",
		Author:      "Jean-Jacques Rousseau",
		Theme:       "Liberté",
		Explanation: "Rousseau définit la liberté comme autonomie : être libre, c'est être son propre maître, ne dépendre que de sa propre volonté.",
	},

	// Vérité
	{
		Text:        "La vérité est dans l'expérience, non dans la tradition.",
		Author:      "Galilée",
		Theme:       "Vérité",
		Explanation: "Galilée oppose la méthode expérimentale moderne à l'autorité des textes anciens. La vérité se découvre par l'observation et l'expérimentation.",
	},
	{
		Text:        "Le vrai est le tout.",
		Author:      "Georg Hegel",
		Theme:       "Vérité",
		Explanation: "Pour Hegel, la vérité n'est pas dans les éléments isolés mais dans la totalité systématique. Seule la vision d'ensemble révèle la vérité.",
	},
	{
		Text:        "Il n'y a pas de faits, seulement des interprétations.",
		Author:      "Friedrich Nietzsche",
		Theme:       "Vérité",
		Explanation: "Nietzsche remet en question l'objectivité des faits. Tout ce que nous prenons pour des faits est déjà une interprétation selon notre perspective.",
	},

	// Conscience
	{
		Text:        "Je pense, donc je suis.",
		Author:      "René Descartes",
		Theme:       "Conscience",
		Explanation: "Le cogito cartésien établit la première vérité indubitable : l'existence de la pensée prouve l'existence du sujet pensant.",
	},
	{
		Text:        "La conscience est la lumière de l'intelligence pour distinguer le bien du mal.",
		Author:      "Confucius",
		Theme:       "Conscience",
		Explanation: "Confucius présente la conscience comme une faculté morale qui guide nos jugements éthiques et nos actions.",
	},
	{
		Text:        "L'inconscient est le psychique lui-même et son essentielle réalité.",
		Author:      "Sigmund Freud",
		Theme:       "Conscience",
		Explanation: "Freud révolutionne la conception de la conscience en montrant que l'inconscient constitue la part la plus importante de notre psychisme.",
	},

	// Bonheur
	{
		Text:        "Le plaisir est le commencement et la fin de la vie heureuse.",
		Author:      "Épicure",
		Theme:       "Bonheur",
		Explanation: "Épicure fonde sa philosophie sur la recherche du plaisir, mais un plaisir raisonné qui évite la douleur et les troubles de l'âme.",
	},
	{
		Text:        "Le bonheur est une idée neuve en Europe.",
		Author:      "Saint-Just",
		Theme:       "Bonheur",
		Explanation: "Saint-Just proclame que la Révolution française introduit une conception nouvelle : le bonheur comme droit politique et social.",
	},
	{
		Text:        "Il n'y a pas de bonheur sans courage, ni de vertu sans combat.",
		Author:      "Jean-Jacques Rousseau",
		Theme:       "Bonheur",
		Explanation: "Rousseau lie le bonheur à l'effort moral. Le vrai bonheur ne peut être séparé de la vertu et demande du courage.",
	},

	// Justice
	{
		Text:        "La justice est la première vertu des institutions sociales.",
		Author:      "John Rawls",
		Theme:       "Justice",
		Explanation: "Rawls place la justice au fondement de toute organisation sociale légitime. Sans justice, les institutions perdent leur légitimité.",
	},
	{
		Text:        "Rien n'est plus injuste que de traiter également des choses inégales.",
		Author:      "Aristote",
		Theme:       "Justice",
		Explanation: "Aristote distingue l'égalité arithmétique de l'équité. La vraie justice consiste à traiter différemment ce qui est différent.",
	},
	{
		Text:        "Le droit est la volonté générale érigée en loi.",
		Author:      "Jean-Jacques Rousseau",
		Theme:       "Justice",
		Explanation: "Rousseau fonde la légitimité du droit sur la volonté générale. Les lois justes expriment la volonté commune du peuple.",
	},

	// Morale
	{
		Text:        "Agis seulement d'après la maxime grâce à laquelle tu peux vouloir qu'elle devienne une loi universelle.",
		Author:      "Emmanuel Kant",
		Theme:       "Morale",
		Explanation: "L'impératif catégorique kantien : une action n'est morale que si elle peut être universalisée sans contradiction.",
	},
	{
		Text:        "Ce qui est légal n'est pas toujours moral.",
		Author:      "Martin Luther King",
		Theme:       "Morale",
		Explanation: "King distingue la légalité de la moralité. Une loi peut être légale mais injuste, d'où la possibilité de la désobéissance civile.",
	},
	{
		Text:        "Le devoir est une nécessité d'agir par respect pour la loi.",
		Author:      "Emmanuel Kant",
		Theme:       "Morale",
		Explanation: "Kant définit le devoir moral comme obéissance à la loi morale par respect, non par intérêt ou inclination.",
	},

	// Travail
	{
		Text:        "L'homme se fait par le travail.",
		Author:      "Karl Marx",
		Theme:       "Travail",
		Explanation: "Marx voit dans le travail l'essence de l'homme : c'est par le travail que l'homme se réalise et transforme le monde.",
	},
	{
		Text:        "Le travail éloigne de nous trois grands maux : l'ennui, le vice et le besoin.",
		Author:      "Voltaire",
		Theme:       "Travail",
		Explanation: "Voltaire présente le travail comme remède aux maux humains : il occupe l'esprit, moralise et assure la subsistance.",
	},
	{
		Text:        "Par le travail, l'homme transforme la nature et se transforme lui-même.",
		Author:      "Georg Hegel",
		Theme:       "Travail",
		Explanation: "Hegel montre la double dimension du travail : transformation du monde extérieur et formation de soi.",
	},

	// Technique
	{
		Text:        "La technique est ce par quoi l'homme dépasse la nature.",
		Author:      "Gilbert Simondon",
		Theme:       "Technique",
		Explanation: "Simondon voit dans la technique le moyen pour l'homme de transcender ses limites naturelles et de créer un monde artificiel.",
	},
	{
		Text:        "La science sans conscience n'est que ruine de l'âme.",
		Author:      "François Rabelais",
		Theme:       "Technique",
		Explanation: "Rabelais met en garde contre une science purement technique, dépourvue de réflexion morale et de sagesse.",
	},
	{
		Text:        "La technique promet la maîtrise, mais elle engendre aussi la dépendance.",
		Author:      "Martin Heidegger",
		Theme:       "Technique",
		Explanation: "Heidegger souligne l'ambiguïté de la technique : elle nous donne du pouvoir mais nous rend aussi dépendants d'elle.",
	},

	// Langage
	{
		Text:        "Le langage est la maison de l'être.",
		Author:      "Martin Heidegger",
		Theme:       "Langage",
		Explanation: "Heidegger voit dans le langage le lieu où l'être se révèle. C'est par le langage que nous habitons le monde.",
	},
	{
		Text:        "Ce qui se conçoit bien s'énonce clairement.",
		Author:      "Nicolas Boileau",
		Theme:       "Langage",
		Explanation: "Boileau établit un lien entre clarté de la pensée et clarté de l'expression. Bien penser, c'est bien parler.",
	},
	{
		Text:        "Parler, c'est agir.",
		Author:      "John Austin",
		Theme:       "Langage",
		Explanation: "Austin révèle la dimension performative du langage : certains énoncés ne décrivent pas mais accomplissent des actions.",
	},

	// Société
	{
		Text:        "L'homme est un animal politique.",
		Author:      "Aristote",
		Theme:       "Société",
		Explanation: "Aristote affirme que l'homme ne peut se réaliser pleinement qu'en société. La vie politique est naturelle à l'homme.",
	},
	{
		Text:        "L'État, c'est le plus froid des monstres froids.",
		Author:      "Friedrich Nietzsche",
		Theme:       "Société",
		Explanation: "Nietzsche critique l'État moderne comme une machine bureaucratique qui déshumanise et écrase l'individu.",
	},
	{
		Text:        "L'obéissance à la loi qu'on s'est prescrite est liberté.",
		Author:      "Jean-Jacques Rousseau",
		Theme:       "Société",
		Explanation: "Rousseau résout le paradoxe de la liberté en société : obéir aux lois qu'on s'est données collectivement, c'est rester libre.",
	},

	// Religion
	{
		Text:        "La foi commence là où la raison s'arrête.",
		Author:      "Blaise Pascal",
		Theme:       "Religion",
		Explanation: "Pascal distingue les domaines de la raison et de la foi. La foi religieuse dépasse les limites de la connaissance rationnelle.",
	},
	{
		Text:        "Dieu est mort.",
		Author:      "Friedrich Nietzsche",
		Theme:       "Religion",
		Explanation: "Nietzsche annonce la fin de la croyance en Dieu dans la modernité et ses conséquences pour les valeurs morales.",
	},
	{
		Text:        "La religion est l'opium du peuple.",
		Author:      "Karl Marx",
		Theme:       "Religion",
		Explanation: "Marx critique la religion comme illusion qui endort la conscience révolutionnaire et maintient l'oppression sociale.",
	},

	// Nature
	{
		Text:        "L'homme est un loup pour l'homme.",
		Author:      "Thomas Hobbes",
		Theme:       "Nature",
		Explanation: "Hobbes décrit l'état de nature comme guerre de tous contre tous, justifiant la nécessité d'un pouvoir politique fort.",
	},
	{
		Text:        "L'homme est naturellement bon, c'est la société qui le corrompt.",
		Author:      "Jean-Jacques Rousseau",
		Theme:       "Nature",
		Explanation: "Rousseau s'oppose à Hobbes : l'homme naît bon, c'est la civilisation qui introduit le mal et l'inégalité.",
	},
	{
		Text:        "La nature ne fait rien en vain.",
		Author:      "Aristote",
		Theme:       "Nature",
		Explanation: "Aristote affirme la finalité de la nature : tout dans la nature a une fonction et une raison d'être.",
	},

	// Art
	{
		Text:        "L'art est ce qui rend la vie plus belle que l'art.",
		Author:      "Friedrich Nietzsche",
		Theme:       "Art",
		Explanation: "Nietzsche voit dans l'art une transfiguration de l'existence qui donne un sens esthétique à la vie.",
	},
	{
		Text:        "L'art est une illusion qui dit la vérité.",
		Author:      "Pablo Picasso",
		Theme:       "Art",
		Explanation: "Picasso exprime le paradoxe de l'art : par la fiction et l'illusion, il révèle des vérités sur la condition humaine.",
	},
	{
		Text:        "L'art est une imitation de la nature.",
		Author:      "Aristote",
		Theme:       "Art",
		Explanation: "Aristote définit l'art comme mimesis : l'art imite la nature, mais cette imitation peut révéler l'essence des choses.",
	},

	// Temps
	{
		Text:        "Qu'est-ce donc que le temps ? Si personne ne me le demande, je le sais.",
		Author:      "Saint Augustin",
		Theme:       "Temps",
		Explanation: "Saint Augustin exprime le paradoxe du temps : nous en avons une expérience intime mais il échappe à la définition rationnelle.",
	},
	{
		Text:        "La durée est l'essence de la conscience.",
		Author:      "Henri Bergson",
		Theme:       "Temps",
		Explanation: "Bergson distingue le temps vécu (durée) du temps mesuré. La conscience est essentiellement temporelle.",
	},
	{
		Text:        "Le temps change tout, sauf notre mémoire.",
		Author:      "Tennessee Williams",
		Theme:       "Temps",
		Explanation: "Williams souligne le pouvoir de la mémoire à préserver le passé contre l'écoulement destructeur du temps.",
	},

	// Mort
	{
		Text:        "La mort n'est rien pour nous.",
		Author:      "Épicure",
		Theme:       "Mort",
		Explanation: "Épicure enseigne à ne pas craindre la mort : tant que nous existons, elle n'est pas là ; quand elle arrive, nous n'existons plus.",
	},
	{
		Text:        "Être, c'est être-pour-la-mort.",
		Author:      "Martin Heidegger",
		Theme:       "Mort",
		Explanation: "Heidegger fait de la conscience de la mort la structure fondamentale de l'existence humaine authentique.",
	},
	{
		Text:        "On ne meurt qu'une fois, et c'est pour si longtemps.",
		Author:      "Molière",
		Theme:       "Mort",
		Explanation: "Molière exprime avec humour l'irréversibilité de la mort et l'angoisse qu'elle suscite.",
	},
}

// CitationsByTheme retourne les citations d'un thème (insensible à la casse)
func CitationsByTheme(theme string) []models.Citation {
	var out []models.Citation
	for _, c := range citations {
		if strings.EqualFold(c.Theme, theme) {
			out = append(out, c)
		}
	}
	return out
}

// RandomCitation tire une citation au hasard, éventuellement restreinte à un
// thème. Retourne false si le thème demandé n'a aucune citation.
func RandomCitation(rng *rand.Rand, theme string) (models.Citation, bool) {
	pool := citations
	if theme != "" {
		pool = CitationsByTheme(theme)
	}
	if len(pool) == 0 {
		return models.Citation{}, false
	}
	return pool[rng.Intn(len(pool))], true
}

// CitationThemes retourne les thèmes du recueil, sans doublon, dans l'ordre
// de déclaration
func CitationThemes() []string {
	seen := make(map[string]bool)
	var themes []string
	for _, c := range citations {
		if !seen[c.Theme] {
			seen[c.Theme] = true
			themes = append(themes, c.Theme)
		}
	}
	return themes
}

// SearchCitations recherche dans les textes, auteurs et thèmes
func SearchCitations(query string) []models.Citation {
	queryLower := strings.ToLower(query)

	var out []models.Citation
	for _, c := range citations {
		if strings.Contains(strings.ToLower(c.Text), queryLower) ||
			strings.Contains(strings.ToLower(c.Author), queryLower) ||
			strings.Contains(strings.ToLower(c.Theme), queryLower) {
			out = append(out, c)
		}
	}
	return out
}

// AllCitations retourne une copie du recueil complet
func AllCitations() []models.Citation {
	return append([]models.Citation(nil), citations...)
}
