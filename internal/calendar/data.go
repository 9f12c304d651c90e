package calendar

// Data credits: https://github.com/tobozo/SaintObjetBot

var defaultEntries = map[Date]Entry{
	{1, 1}: {"veisalgie", "veisalgies", Feminine},
	{1, 2}: {"ankylostome", "ankylostomes", Masculine},
	{1, 3}: {"apex", "apexes", Masculine},
	{1, 4}: {"arlequin", "arlequins", Masculine},
	{1, 5}: {"bengali", "bengalis", Masculine},
	{1, 6}: {"bouquetin", "bouquetins", Masculine},
	{1, 7}: {"cancrelat", "cancrelats", Masculine},
	{1, 8}: {"cerf-volant", "cerfs-volants", Masculine},
	{1, 9}: {"colibri", "colibris", Masculine},
	{1, 10}: {"dromadaire", "dromadaires", Masculine},
	{1, 11}: {"embrouillamini", "embrouillaminis", Masculine},
	{1, 12}: {"fauconneau", "fauconeaux", Masculine},
	{1, 13}: {"gambette", "gambettes", Feminine},
	{1, 14}: {"hérisson", " hérissons", Masculine},
	{1, 15}: {"javelot", "javelots", Masculine},
	{1, 16}: {"kangourou", "kangourous", Masculine},
	{1, 17}: {"lampion", "lampions", Masculine},
	{1, 18}: {"manuscrit", "manuscrits", Masculine},
	{1, 19}: {"quignon", "quignons", Masculine},
	{1, 20}: {"tablier", "tabliers", Masculine},
	{1, 21}: {"zorglub", "zorglubs", Masculine},
	{1, 22}: {"pataquès", "pataquès", Masculine},
	{1, 23}: {"bobèche", "bobèches", Feminine},
	{1, 24}: {"zézaiement", "zézaiements", Masculine},
	{1, 25}: {"flibustier", "flibustiers", Masculine},
	{1, 26}: {"mirliton", "mirlitons", Masculine},
	{1, 27}: {"craspouille", "craspouilles", Feminine},
	{1, 28}: {"zigouigoui", "zigouigouis", Masculine},
	{1, 29}: {"faribole", "fariboles", Feminine},
	{1, 30}: {"pantouflette", "pantouflettes", Feminine},
	{1, 31}: {"zinzin", "zinzins", Masculine},

	{2, 1}: {"bibelot", "bibelots", Masculine},
	{2, 2}: {"ukulélé", "ukulélés", Masculine},
	{2, 3}: {"grigris", "grigris", Masculine},
	{2, 4}: {"crinoline", "crinolines", Feminine},
	{2, 5}: {"turlutaine", "turlutaines", Feminine},
	{2, 6}: {"boudeuse", "boudeuses", Feminine},
	{2, 7}: {"tralala", "tralalas", Masculine},
	{2, 8}: {"carambolage", "carambolages", Masculine},
	{2, 9}: {"frimousse", "frimousses", Feminine},
	{2, 10}: {"catafalque", "catafalques", Masculine},
	{2, 11}: {"chicane", "chicanes", Feminine},
	{2, 12}: {"barbichette", "barbichettes", Feminine},
	{2, 13}: {"croquignole", "croquignoles", Masculine},
	{2, 14}: {"rouleau de sopalin", "rouleaux de sopalin", Masculine},
	{2, 15}: {"clavicule", "clavicules", Feminine},
	{2, 16}: {"bambinette", "bambinettes", Feminine},
	{2, 17}: {"sporange", "sporanges", Masculine},
	{2, 18}: {"fléole", "fléoles", Feminine},
	{2, 19}: {"goubelin", "goubelins", Masculine},
	{2, 20}: {"bélin", "bélins", Masculine},
	{2, 21}: {"grébiche", "grébiches", Feminine},
	{2, 22}: {"pipistrelle", "pipistrelles", Feminine},
	{2, 23}: {"badine", "badines", Feminine},
	{2, 24}: {"guttule", "guttules", Feminine},
	{2, 25}: {"sautoir", "sautoirs", Masculine},
	{2, 26}: {"tourniquet", "tourniquets", Masculine},
	{2, 27}: {"grenouillère", "grenouillères", Feminine},
	{2, 28}: {"torsade", "torsades", Feminine},
	{2, 29}: {"calicot", "calicots", Masculine},

	{3, 1}: {"gousset", "goussets", Masculine},
	{3, 2}: {"tournebille", "tournebilles", Feminine},
	{3, 3}: {"gibelotte", "gibelottes", Feminine},
	{3, 4}: {"cabestan", "cabestans", Masculine},
	{3, 5}: {"mélopée", "mélodées", Feminine},
	{3, 6}: {"galurin", "galurins", Masculine},
	{3, 7}: {"joug", "jougs", Masculine},
	{3, 8}: {"cabriole", "cabrioles", Feminine},
	{3, 9}: {"attache parisienne", "attaches parisiennes", Feminine},
	{3, 10}: {"bac à charbon", "bacs à charbon", Masculine},
	{3, 11}: {"béquille", "béquilles", Feminine},
	{3, 12}: {"boussole", "boussoles", Feminine},
	{3, 13}: {"caméra argentique", "caméras argentiques", Feminine},
	{3, 14}: {"canne", "cannes", Feminine},
	{3, 15}: {"cloche", "cloches", Feminine},
	{3, 16}: {"clou", "clous", Masculine},
	{3, 17}: {"coton-tige", "cotons-tiges", Masculine},
	{3, 18}: {"disque vinyle", "disques vinyles", Masculine},
	{3, 19}: {"encrier", "encriers", Masculine},
	{3, 20}: {"fer à repasser", "fers à repasser", Masculine},
	{3, 21}: {"fusil à pompe", "fusils à pompe", Masculine},
	{3, 22}: {"gourde", "gourdes", Feminine},
	{3, 23}: {"imprimante à marguerite", "imprimantes à marguerite", Feminine},
	{3, 24}: {"tendu-de-majeur", "doigts d'honneur", Masculine},
	{3, 25}: {"machine à écrire", "machines à écrire", Feminine},
	{3, 26}: {"poignée de porte", "poignées de porte", Feminine},
	{3, 27}: {"savon de marseille", "savons de marseille", Masculine},
	{3, 28}: {"stylo à plume", "stylos à plume", Masculine},
	{3, 29}: {"téléviseur cathodique", "téléviseurs cathodiques", Masculine},
	{3, 30}: {"urne funéraire", "urnes funéraires", Feminine},
	{3, 31}: {"balai", "balais", Masculine},

	{4, 1}: {"microplastique", "microplastiques", Masculine},
	{4, 2}: {"bougie", "bougies", Feminine},
	{4, 3}: {"cabine téléphonique", "cabines téléphoniques", Feminine},
	{4, 4}: {"canapé", "canapés", Masculine},
	{4, 5}: {"carte postale", "cartes postales", Feminine},
	{4, 6}: {"ceinture", "ceintures", Feminine},
	{4, 7}: {"engrenage", "engrenages", Masculine},
	{4, 8}: {"escalier", "escaliers", Masculine},
	{4, 9}: {"monogramme", "monogrammes", Masculine},
	{4, 10}: {"acanthe", "acanthes", Feminine},
	{4, 11}: {"humus", "humus", Masculine},
	{4, 12}: {"entroque", "entroque", Feminine},
	{4, 13}: {"fourneau", "fourneaux", Masculine},
	{4, 14}: {"ampoule multiprise et rallonge", "ampoules multiprises et rallonges", Feminine},
	{4, 15}: {"alésoir à cliquet", "Alésoirs à cliquets", Masculine},
	{4, 16}: {"clapier", "clapiers", Masculine},
	{4, 17}: {"taloche", "taloches", Feminine},
	{4, 18}: {"occiput", "occiputs", Masculine},
	{4, 19}: {"diodon", "diodons", Masculine},
	{4, 20}: {"tricorne", "tricornes", Masculine},
	{4, 21}: {"spume", "spumes", Feminine},
	{4, 22}: {"manchon", "manchons", Masculine},
	{4, 23}: {"limaçon", "limaçons", Masculine},
	{4, 24}: {"levraut", "levrauts", Masculine},
	{4, 25}: {"gymkhana", "gymkhanas", Masculine},
	{4, 26}: {"dosimètre", "dosimètres", Masculine},
	{4, 27}: {"queue-de-pie", "queues-de-pie", Feminine},
	{4, 28}: {"clé à pipe débouchée", "Clés à pipe débouchées", Feminine},
	{4, 29}: {"perruque", "perruques", Feminine},
	{4, 30}: {"traille", "trailles", Feminine},

	{5, 1}: {"tripalium", "tripaliums", Masculine},
	{5, 2}: {"pastille", "pastilles", Feminine},
	{5, 3}: {"francisque", "francisques", Feminine},
	{5, 4}: {"pirouette", "pirouettes", Feminine},
	{5, 5}: {"marmouset", "marmousets", Masculine},
	{5, 6}: {"pédicelle", "pédicelles", Masculine},
	{5, 7}: {"hypsomètre", "hypsomètres", Masculine},
	{5, 8}: {"lambrequin", "lambrequins", Masculine},
	{5, 9}: {"cribellum", "cribellums", Masculine},
	{5, 10}: {"hélicoïde", "hélicoïdes", Feminine},
	{5, 11}: {"quenouille", "quenouilles", Feminine},
	{5, 12}: {"zythum", "zytha", Masculine},
	{5, 13}: {"sarbacane", "sarbacanes", Feminine},
	{5, 14}: {"turion", "turions", Masculine},
	{5, 15}: {"blaireau", "blaireaux", Masculine},
	{5, 16}: {"sémaphore", "sémaphores", Feminine},
	{5, 17}: {"crispatule", "crispatules", Feminine},
	{5, 18}: {"zist", "zists", Masculine},
	{5, 19}: {"chiquenaude", "chiquenaudes", Feminine},
	{5, 20}: {"sagouin", "sagouins", Masculine},
	{5, 21}: {"borborygme", "borborygmes", Masculine},
	{5, 22}: {"zéphyr", "zéphyrs", Masculine},
	{5, 23}: {"schnock", "schnocks", Masculine},
	{5, 24}: {"pendeloque", "pendeloques", Feminine},
	{5, 25}: {"falbala", "falbalas", Masculine},
	{5, 26}: {"nycthémère", "nycthémères", Masculine},
	{5, 27}: {"houppier", "houppiers", Masculine},
	{5, 28}: {"suaire", "suaires", Masculine},
	{5, 29}: {"jable", "jables", Masculine},
	{5, 30}: {"goulot", "goulots", Masculine},
	{5, 31}: {"bourdalou", "bourdalous", Masculine},

	{6, 1}: {"zibeline", "zibelines", Feminine},
	{6, 2}: {"turpitude", "turpitudes", Feminine},
	{6, 3}: {"carafon", "carafons", Masculine},
	{6, 4}: {"roubignole", "roubignoles", Feminine},
	{6, 5}: {"cantharide", "cantharides", Feminine},
	{6, 6}: {"pédoncule", "pédoncules", Masculine},
	{6, 7}: {"élytre", "élytres", Masculine},
	{6, 8}: {"cressonnière", "cressonnières", Feminine},
	{6, 9}: {"araignée", "araignées", Feminine},
	{6, 10}: {"sarment", "sarments", Masculine},
	{6, 11}: {"argousin", "argousins", Masculine},
	{6, 12}: {"poudingue", "poudingues", Masculine},
	{6, 13}: {"pandiculation", "pandiculations", Feminine},
	{6, 14}: {"gaudriole", "gaudrioles", Feminine},
	{6, 15}: {"chenapan", "chenapans", Masculine},
	{6, 16}: {"carabistouille", "carabistouilles", Feminine},
	{6, 17}: {"baliverne", "balivernes", Feminine},
	{6, 18}: {"histrion", "histrions", Masculine},
	{6, 19}: {"babiole", "babioles", Feminine},
	{6, 20}: {"pétouille", "pétouilles", Feminine},
	{6, 21}: {"baragouin", "baragouins", Masculine},
	{6, 22}: {"patatras", "patatras", Masculine},
	{6, 23}: {"alambic", "alambics", Masculine},
	{6, 24}: {"billevesée", "billevesées", Feminine},
	{6, 25}: {"rigolboche", "rigolboches", Feminine},
	{6, 26}: {"turlupin", "turlupins", Masculine},
	{6, 27}: {"turlurette", "turlurettes", Feminine},
	{6, 28}: {"guignol", "guignols", Masculine},
	{6, 29}: {"bille-molle", "billes-molles", Feminine},
	{6, 30}: {"brimborion", "brimborions", Masculine},

	{7, 1}: {"mirliflore", "mirliflores", Feminine},
	{7, 2}: {"clapiotte", "clapiottes", Feminine},
	{7, 3}: {"gaffophone", "gaffophones", Masculine},
	{7, 4}: {"légumineur", "légumineurs", Masculine},
	{7, 5}: {"micro-onduleur", "micro-onduleurs", Masculine},
	{7, 6}: {"frite-magique", "frites-magiques", Feminine},
	{7, 7}: {"extracteur du potentiel de point zéro", "extracteurs du potentiel de point zéro", Masculine},
	{7, 8}: {"réveil-tartine", "réveils-tartines", Masculine},
	{7, 9}: {"horloge-moussante", "horloges-moussantes", Feminine},
	{7, 10}: {"canapélicoptère", "canapélicoptères", Masculine},
	{7, 11}: {"éponge-lumineuse", "éponges-lumineuses", Feminine},
	{7, 12}: {"spatulon", "spatulons", Masculine},
	{7, 13}: {"vaissellier-volant", "vaisselliers-volants", Masculine},
	{7, 14}: {"boîte-à-bêtises", "boîtes-à-bêtises", Feminine},
	{7, 15}: {"télé-poubelle", "télé-poubelles", Feminine},
	{7, 16}: {"baignoire-parlante", "baignoires-parlantes", Feminine},
	{7, 17}: {"armoire-à-glissade", "armoires-à-glissade", Feminine},
	{7, 18}: {"pierre manale", "pierres manales", Feminine},
	{7, 19}: {"grille-pain de l'espace", "grilles-pains de l'espace", Masculine},
	{7, 20}: {"robot-raccommodeur", "robots-raccommodeurs", Masculine},
	{7, 21}: {"fourchette-à-comptine", "fourchettes-à-comptines", Feminine},
	{7, 22}: {"pantoufle-réactive", "pantoufles-réactives", Feminine},
	{7, 23}: {"coussin-péteur", "coussins-péteurs", Masculine},
	{7, 24}: {"télé-orbitale", "télés-orbitales", Feminine},
	{7, 25}: {"brosse-à-dent sonique", "brosses-à-dent soniques", Feminine},
	{7, 26}: {"couette-intelligente", "couettes-intelligentes", Feminine},
	{7, 27}: {"pyjama-à-histoires", "pyjamas-à-histoires", Masculine},
	{7, 28}: {"bol-à-mystère", "bols-à-mystère", Masculine},
	{7, 29}: {"tabouret-téléphone", "tabourets-téléphone", Masculine},
	{7, 30}: {"miroir-savant", "miroirs-savants", Masculine},
	{7, 31}: {"tapis-volant d'intérieur", "tapis-volants d'intérieur", Masculine},

	{8, 1}: {"oreiller-à-musique", "oreillers-à-musique", Masculine},
	{8, 2}: {"papier-peint interactif", "papiers-peints interactifs", Masculine},
	{8, 3}: {"xylophone", "xylophones", Masculine},
	{8, 4}: {"guilloché", "guillochés", Masculine},
	{8, 5}: {"djembé", "djembés", Masculine},
	{8, 6}: {"caipirinha", "caipirinhas", Feminine},
	{8, 7}: {"tzatziki", "tzatzikis", Neutral},
	{8, 8}: {"karaoke", "karaokes", Masculine},
	{8, 9}: {"kantele", "kanteles", Feminine},
	{8, 10}: {"haiku", "haikus", Masculine},
	{8, 11}: {"colchique", "colchiques", Feminine},
	{8, 12}: {"molinillo", "molinillos", Masculine},
	{8, 13}: {"quokka", "quokkas", Feminine},
	{8, 14}: {"duduk", "duduks", Masculine},
	{8, 15}: {"balalaïka", "balalaïkas", Feminine},
	{8, 16}: {"fajitas", "fajitas", Feminine},
	{8, 17}: {"bobineau", "bobineaux", Masculine},
	{8, 18}: {"fjord", "fjords", Masculine},
	{8, 19}: {"tsampa", "tsampas", Feminine},
	{8, 20}: {"qipao", "qipaos", Feminine},
	{8, 21}: {"boomerang", "boomerangs", Masculine},
	{8, 22}: {"cachou", "cachous", Masculine},
	{8, 23}: {"sac à dos", "sacs à dos", Masculine},
	{8, 24}: {"brosse à dents", "brosses à dents", Feminine},
	{8, 25}: {"lampe de bureau", "lampes de bureau", Feminine},
	{8, 26}: {"tapis de souris", "tapis de souris", Masculine},
	{8, 27}: {"pot de fleurs", "pots de fleurs", Masculine},
	{8, 28}: {"brosse à cheveux", "brosses à cheveux", Feminine},
	{8, 29}: {"boucle d'oreille", "boucles d'oreilles", Feminine},
	{8, 30}: {"manette de jeu", "manettes de jeu", Feminine},
	{8, 31}: {"tapis de yoga", "tapis de yoga", Masculine},

	{9, 1}: {"corde à sauter", "cordes à sauter", Feminine},
	{9, 2}: {"haltère", "haltères", Masculine},
	{9, 3}: {"trottinette", "trottinettes", Feminine},
	{9, 4}: {"sac de couchage", "sacs de couchage", Masculine},
	{9, 5}: {"réchaud de camping", "réchauds de camping", Masculine},
	{9, 6}: {"chaussure de randonnée", "chaussures de randonnée", Feminine},
	{9, 7}: {"taille-crayon", "taille-crayons", Masculine},
	{9, 8}: {"agrafeuse", "agrafeuses", Feminine},
	{9, 9}: {"aspirateur", "aspirateurs", Masculine},
	{9, 10}: {"lave-linge", "lave-linges", Masculine},
	{9, 11}: {"sèche-linge", "sèche-linges", Masculine},
	{9, 12}: {"machine à coudre", "machines à coudre", Feminine},
	{9, 13}: {"serpillère", "serpillères", Feminine},
	{9, 14}: {"tronçonneuse", "tronçonneuses", Feminine},
	{9, 15}: {"débroussailleuse", "débroussailleuses", Feminine},
	{9, 16}: {"motoculteur", "motoculteurs", Masculine},
	{9, 17}: {"râteau", "râteaux", Masculine},
	{9, 18}: {"clé à molette", "clés à molette", Feminine},
	{9, 19}: {"scie circulaire", "scies circulaires", Feminine},
	{9, 20}: {"détecteur de fumée", "détecteurs de fumée", Masculine},
	{9, 21}: {"caméra de surveillance", "caméras de surveillance", Feminine},
	{9, 22}: {"moustiquaire", "moustiquaires", Feminine},
	{9, 23}: {"brise-vent", "brise-vent", Masculine},
	{9, 24}: {"balcon", "balcons", Masculine},
	{9, 25}: {"jardinière", "jardinières", Feminine},
	{9, 26}: {"buisson", "buissons", Masculine},
	{9, 27}: {"haie", "haies", Feminine},
	{9, 28}: {"système d'irrigation", "systèmes d'irrigation", Masculine},
	{9, 29}: {"thermomètre", "thermomètres", Masculine},
	{9, 30}: {"hygromètre", "hygromètres", Masculine},

	{10, 1}: {"luxmètre", "luxmètres", Masculine},
	{10, 2}: {"anémomètre", "anémomètres", Masculine},
	{10, 3}: {"pluviomètre", "pluviomètres", Masculine},
	{10, 4}: {"baromètre", "baromètres", Masculine},
	{10, 5}: {"chronomètre", "chronomètres", Masculine},
	{10, 6}: {"microscope", "microscopes", Masculine},
	{10, 7}: {"télescope", "télescopes", Masculine},
	{10, 8}: {"spectroscope", "spectroscopes", Masculine},
	{10, 9}: {"sac à bière", "sacs à bière", Masculine},
	{10, 10}: {"ohmmètre", "ohmmètres", Masculine},
	{10, 11}: {"ampermètre", "ampermètres", Masculine},
	{10, 12}: {"voltmètre", "voltmètres", Masculine},
	{10, 13}: {"oscilloscope", "oscilloscopes", Masculine},
	{10, 14}: {"fréquencemètre", "fréquencemètres", Masculine},
	{10, 15}: {"analyseur de spectre", "analyseurs de spectre", Masculine},
	{10, 16}: {"circuit imprimé", "circuits imprimés", Masculine},
	{10, 17}: {"disjoncteur", "disjoncteurs", Masculine},
	{10, 18}: {"machine-à-faire-des-trous-dans-les-spaghetti", "machines-à-faire-des-trous-dans-les-spaghetti", Feminine},
	{10, 19}: {"morceau de bois", "morceaux de bois", Masculine},
	{10, 20}: {"pot de colle", "pots de colle", Masculine},
	{10, 21}: {"paquet cadeau", "paquets cadeaux", Masculine},
	{10, 22}: {"cacatoès", "cacatoès", Feminine},
	{10, 23}: {"harmonica", "harmonicas", Masculine},
	{10, 24}: {"bigoudi", "bigoudis", Masculine},
	{10, 25}: {"dent de lait", "dents de lait", Feminine},
	{10, 26}: {"bonhomme de neige", "bonhommes de neige", Masculine},
	{10, 27}: {"marteau picoreur", "marteaux picoreurs", Masculine},
	{10, 28}: {"bande magnétique", "bandes magnétiques", Feminine},
	{10, 29}: {"punaise de lit", "punaises de lit", Feminine},
	{10, 30}: {"carte de voeux", "cartes de voeux", Feminine},
	{10, 31}: {"moins que rien", "moins que rien", Masculine},

	{11, 1}: {"tour eiffel", "tours eiffel", Feminine},
	{11, 2}: {"symptôme", "symptômes", Masculine},
	{11, 3}: {"mamanite", "amanites", Feminine},
	{11, 4}: {"cornichon", "cornichons", Masculine},
	{11, 5}: {"zinzolin", "zinzolins", Masculine},
	{11, 6}: {"jouet à bascule", "jouets à bascule", Masculine},
	{11, 7}: {"bloc-notes", "blocs-notes", Masculine},
	{11, 8}: {"routoir", "routoirs", Masculine},
	{11, 9}: {"guenille", "guenilles", Feminine},
	{11, 10}: {"lunette de soleil", "lunettes de soleil", Feminine},
	{11, 11}: {"octavin", "octavins", Masculine},
	{11, 12}: {"toque à trois cornes", "toques à trois cornes", Feminine},
	{11, 13}: {"navire-hôpital", "navires-hôpitaux", Masculine},
	{11, 14}: {"sesquiplan", "sesquiplans", Masculine},
	{11, 15}: {"baldaquin", "baldaquins", Masculine},
	{11, 16}: {"anémoscope", "anémoscopes", Masculine},
	{11, 17}: {"clavicythérium", "clavicythériums", Masculine},
	{11, 18}: {"certificat de conformité", "certificats de conformité", Masculine},
	{11, 19}: {"bonnet de nuit", " bonnets de nuit", Masculine},
	{11, 20}: {"atmomètre", "atmomètres", Masculine},
	{11, 21}: {"pnéomètre", "pnéomètres", Masculine},
	{11, 22}: {"marie-salope", "marie-salopes", Feminine},
	{11, 23}: {"lettre de crédit", "lettres de crédit", Feminine},
	{11, 24}: {"cithare", "cithares", Feminine},
	{11, 25}: {"tramezzino", "tramezzinos", Masculine},
	{11, 26}: {"ichcahuipilli", "ichcahuipillis", Feminine},
	{11, 27}: {"journal intime", "journaux intimes", Masculine},
	{11, 28}: {"harpe celtique", "harpes celtiques", Feminine},
	{11, 29}: {"nœud d’agui", "nœuds d’agui", Masculine},
	{11, 30}: {"cabotière", "cabotières", Feminine},

	{12, 1}: {"pique-œuf", "pique-œufs", Masculine},
	{12, 2}: {"revue de contrat", "revues de contrats", Feminine},
	{12, 3}: {"grande surface", "grandes surfaces", Feminine},
	{12, 4}: {"manteau de cheminée", "manteaux de cheminées", Masculine},
	{12, 5}: {"charentaise", "charentaises", Feminine},
	{12, 6}: {"chasse-goupille", "chasse-goupilles", Masculine},
	{12, 7}: {"chaussure à orteils", "chaussures à orteils", Feminine},
	{12, 8}: {"giroflée à cinq pétales", "giroflées a cinq pétales", Feminine},
	{12, 9}: {"salade de phalanges", "salades de phalanges", Feminine},
	{12, 10}: {"rogntudju", "rogntudju", Masculine},
	{12, 11}: {"lixiviateuse", "lixiviateuses", Feminine},
	{12, 12}: {"chaise berçante", "chaises berçantes", Feminine},
	{12, 13}: {"chebec", "chebec", Masculine},
	{12, 14}: {"boulevard circulaire", "boulevards circulaires", Masculine},
	{12, 15}: {"bande cyclable", "bandes cyclables", Feminine},
	{12, 16}: {"coupe-boulons", "coupe-boulons", Masculine},
	{12, 17}: {"clé à pipe", "clés à pipes", Feminine},
	{12, 18}: {"ensacheuse", "ensacheuses", Feminine},
	{12, 19}: {"fulguromètre", "fulguromètre", Masculine},
	{12, 20}: {"diptyque", "diptyques", Masculine},
	{12, 21}: {"cucurbitacée", "cucurbitacées", Masculine},
	{12, 22}: {"glassophone", "glassophones", Masculine},
	{12, 23}: {"métaphore", "métaphores", Feminine},
	{12, 24}: {"pentécontère", "pentécontères", Masculine},
	{12, 25}: {"prépuce", "prépuces", Masculine},
	{12, 26}: {"cumulus bourgeonnant", "cumulus bourgeonnants", Masculine},
	{12, 27}: {"pyréolophore", "pyréolophores", Masculine},
	{12, 28}: {"soubassophone", "soubassophones", Masculine},
	{12, 29}: {"béret basque", "bérets basques", Masculine},
	{12, 30}: {"vocifération sportive", "vociférations sportives", Masculine},
	{12, 31}: {"armoire à glace", "armoires à glace", Feminine},
}
